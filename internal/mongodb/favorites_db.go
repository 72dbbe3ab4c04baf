package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type FavoriteDb struct {
	Id        string    `json:"id" bson:"_id"`
	UserId    string    `json:"userId" bson:"userId"`
	TourId    string    `json:"tourId" bson:"tourId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

// AddFavorite inserts a favorite; the unique (userId, tourId) index turns a
// second insert for the same pair into ErrDuplicateRecord.
func (db *DB) AddFavorite(ctx context.Context, favorite FavoriteDb) (FavoriteDb, error) {
	coll := db.Collection(FavoritesCollection)

	favorite.Id = primitive.NewObjectID().Hex()
	favorite.CreatedAt = time.Now()

	if _, err := coll.InsertOne(ctx, favorite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return FavoriteDb{}, ErrDuplicateRecord
		}
		return FavoriteDb{}, err
	}

	return favorite, nil
}

func (db *DB) DeleteFavorite(ctx context.Context, userId, tourId string) (bool, error) {
	coll := db.Collection(FavoritesCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"userId": userId, "tourId": tourId})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}

func (db *DB) GetFavoritesByUserId(ctx context.Context, userId string) ([]FavoriteDb, error) {
	coll := db.Collection(FavoritesCollection)

	cursor, err := coll.Find(ctx, bson.M{"userId": userId})
	if err != nil {
		return []FavoriteDb{}, err
	}
	defer cursor.Close(ctx)

	favoritesDb := []FavoriteDb{}
	if err := cursor.All(ctx, &favoritesDb); err != nil {
		return []FavoriteDb{}, err
	}

	return favoritesDb, nil
}
