package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type ReviewDb struct {
	Id        string    `json:"id" bson:"_id"`
	TourId    string    `json:"tourId" bson:"tourId"`
	UserId    string    `json:"userId" bson:"userId"`
	UserName  string    `json:"userName" bson:"userName"`
	Text      string    `json:"text" bson:"text"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) AddReview(ctx context.Context, review ReviewDb) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	review.Id = primitive.NewObjectID().Hex()
	review.CreatedAt = time.Now()

	if _, err := coll.InsertOne(ctx, review); err != nil {
		return ReviewDb{}, err
	}

	return review, nil
}

// GetReviewsByTourId returns all reviews for a tour, newest first. A tour
// with no reviews yields an empty slice, not an error.
func (db *DB) GetReviewsByTourId(ctx context.Context, tourId string) ([]ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{"tourId": tourId}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return []ReviewDb{}, err
	}
	defer cursor.Close(ctx)

	reviewsDb := []ReviewDb{}
	if err = cursor.All(ctx, &reviewsDb); err != nil {
		return []ReviewDb{}, err
	}

	return reviewsDb, nil
}
