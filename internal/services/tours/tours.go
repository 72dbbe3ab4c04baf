package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/user1094629480/tours-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the slice of the database this service needs.
type Store interface {
	GetTours(ctx context.Context, args ...any) ([]mongodb.TourDb, error)
	GetTourById(ctx context.Context, id string) (mongodb.TourDb, error)
}

// GetTours lists tours, optionally filtered by country and sorted by one of
// the whitelisted fields. Sort order is ascending unless sortOrder is "desc".
func GetTours(db Store, ctx context.Context, country, sortBy, sortOrder string) ([]mongodb.TourDb, error) {
	filter := bson.M{}
	if country != "" {
		filter["country"] = country
	}

	args := []any{filter}
	if sortBy != "" {
		if !sortableFields[sortBy] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSortField, sortBy)
		}
		order := 1
		if sortOrder == "desc" {
			order = -1
		}
		args = append(args, options.Find().SetSort(bson.D{{Key: sortBy, Value: order}}))
	}

	return db.GetTours(ctx, args...)
}

func GetTourById(db Store, ctx context.Context, tourId string) (mongodb.TourDb, error) {
	tourDb, err := db.GetTourById(ctx, tourId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.TourDb{}, fmt.Errorf("%w: %s", ErrTourNotFound, tourId)
		}
		return mongodb.TourDb{}, err
	}

	return tourDb, nil
}
