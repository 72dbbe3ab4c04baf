package reviews

import (
	"context"

	"github.com/user1094629480/tours-backend/internal/mongodb"
)

// Store is the slice of the database this service needs. *mongodb.DB
// satisfies it; tests use fakes.
type Store interface {
	AddReview(ctx context.Context, review mongodb.ReviewDb) (mongodb.ReviewDb, error)
	GetReviewsByTourId(ctx context.Context, tourId string) ([]mongodb.ReviewDb, error)
	TourExists(ctx context.Context, id string) (bool, error)
	UpdateTourAggregate(ctx context.Context, tourId string, rating float64, reviewCount int) error
}
