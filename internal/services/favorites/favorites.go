package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/user1094629480/tours-backend/internal/mongodb"
)

// Store is the slice of the database this service needs.
type Store interface {
	AddFavorite(ctx context.Context, favorite mongodb.FavoriteDb) (mongodb.FavoriteDb, error)
	DeleteFavorite(ctx context.Context, userId, tourId string) (bool, error)
	GetFavoritesByUserId(ctx context.Context, userId string) ([]mongodb.FavoriteDb, error)
	TourExists(ctx context.Context, id string) (bool, error)
	GetTourById(ctx context.Context, id string) (mongodb.TourDb, error)
}

func AddFavorite(db Store, ctx context.Context, userId, tourId string) (mongodb.FavoriteDb, error) {
	if tourId == "" {
		return mongodb.FavoriteDb{}, ErrTourIdRequired
	}

	exists, err := db.TourExists(ctx, tourId)
	if err != nil {
		return mongodb.FavoriteDb{}, err
	}
	if !exists {
		return mongodb.FavoriteDb{}, fmt.Errorf("%w: %s", ErrTourNotFound, tourId)
	}

	favoriteDb, err := db.AddFavorite(ctx, mongodb.FavoriteDb{
		UserId: userId,
		TourId: tourId,
	})
	if err != nil {
		if errors.Is(err, mongodb.ErrDuplicateRecord) {
			return mongodb.FavoriteDb{}, ErrAlreadyFavorite
		}
		return mongodb.FavoriteDb{}, err
	}

	return favoriteDb, nil
}

func RemoveFavorite(db Store, ctx context.Context, userId, tourId string) error {
	deleted, err := db.DeleteFavorite(ctx, userId, tourId)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrFavoriteNotFound, tourId)
	}

	return nil
}

// GetUserFavorites returns the caller's favorites with tours embedded when
// the tour still exists.
func GetUserFavorites(db Store, ctx context.Context, userId string) ([]FavoriteWithTour, error) {
	favoritesDb, err := db.GetFavoritesByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	allFavorites := make([]FavoriteWithTour, 0, len(favoritesDb))
	for _, favoriteDb := range favoritesDb {
		withTour := FavoriteWithTour{FavoriteDb: favoriteDb}

		tourDb, err := db.GetTourById(ctx, favoriteDb.TourId)
		if err == nil {
			withTour.Tour = &tourDb
		} else if !errors.Is(err, mongodb.ErrRecordNotFound) {
			return nil, err
		}

		allFavorites = append(allFavorites, withTour)
	}

	return allFavorites, nil
}
