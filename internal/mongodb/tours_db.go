package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type TourDb struct {
	Id               string     `json:"id" bson:"_id"`
	Name             string     `json:"name" bson:"name"`
	Country          string     `json:"country" bson:"country"`
	Location         string     `json:"location" bson:"location"`
	Cities           []string   `json:"cities,omitempty" bson:"cities,omitempty"`
	Price            float64    `json:"price" bson:"price"`
	Duration         int        `json:"duration,omitempty" bson:"duration,omitempty"`
	GroupSize        int        `json:"groupSize,omitempty" bson:"groupSize,omitempty"`
	Description      string     `json:"description" bson:"description"`
	ImageUrl         string     `json:"imageUrl" bson:"imageUrl"`
	AdditionalImages []string   `json:"additionalImages,omitempty" bson:"additionalImages,omitempty"`
	Includes         []string   `json:"includes,omitempty" bson:"includes,omitempty"`
	Rating           float64    `json:"rating" bson:"rating"`
	ReviewCount      int        `json:"reviewCount" bson:"reviewCount"`
	CreatedAt        *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// ----- Methods for the database -----

func (db *DB) GetTourById(ctx context.Context, id string) (TourDb, error) {
	coll := db.Collection(ToursCollection)

	var tourDb TourDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&tourDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return TourDb{}, ErrRecordNotFound
		}
		return TourDb{}, err
	}

	return tourDb, nil
}

func (db *DB) TourExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(ToursCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *DB) GetTours(ctx context.Context, args ...any) ([]TourDb, error) {
	coll := db.Collection(ToursCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return []TourDb{}, err
	}
	defer cursor.Close(ctx)

	var toursDb []TourDb
	if err := cursor.All(ctx, &toursDb); err != nil {
		return []TourDb{}, err
	}

	return toursDb, nil
}

func (db *DB) AddTour(ctx context.Context, tour TourDb) (TourDb, error) {
	coll := db.Collection(ToursCollection)

	if tour.Id == "" {
		tour.Id = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	tour.CreatedAt = &now

	if _, err := coll.InsertOne(ctx, tour); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return TourDb{}, ErrDuplicateRecord
		}
		return TourDb{}, err
	}

	return tour, nil
}

// UpdateTourAggregate writes the derived rating fields of a tour. It is the
// only writer of rating/reviewCount; no other code path touches them.
func (db *DB) UpdateTourAggregate(ctx context.Context, tourId string, rating float64, reviewCount int) error {
	coll := db.Collection(ToursCollection)

	filter := bson.M{"_id": tourId}
	update := bson.M{
		"$set": bson.M{
			"rating":      rating,
			"reviewCount": reviewCount,
		},
	}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
