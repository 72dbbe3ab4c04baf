package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user1094629480/tours-backend/internal/mongodb"
	"github.com/user1094629480/tours-backend/internal/services/reviews"
	"go.mongodb.org/mongo-driver/bson"
)

func addReview(t *testing.T, tourId string, newReview reviews.NewReviewRequest, token string) *http.Response {
	t.Helper()

	return doJSON(t, http.MethodPost, testServer.URL+"/tours/"+tourId+"/reviews", newReview, token)
}

func getTourFromDb(t *testing.T, tourId string) mongodb.TourDb {
	t.Helper()

	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.ToursCollection)

	var tour mongodb.TourDb
	err := coll.FindOne(context.Background(), bson.M{"_id": tourId}).Decode(&tour)
	require.NoError(t, err, "error querying a tour from db")

	return tour
}

func getReviewFromDb(t *testing.T, reviewId string) mongodb.ReviewDb {
	t.Helper()

	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.ReviewsCollection)

	var review mongodb.ReviewDb
	err := coll.FindOne(context.Background(), bson.M{"_id": reviewId}).Decode(&review)
	require.NoError(t, err, "error querying a review from db")

	return review
}
