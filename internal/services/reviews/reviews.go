package reviews

import (
	"context"
	"fmt"

	"github.com/user1094629480/tours-backend/internal/mongodb"
)

// SubmitReview is the sole entry point for review creation. It validates the
// request, persists the review and refreshes the tour's aggregate rating.
//
// When the aggregate write fails after the review was already persisted, the
// created review is returned together with an error wrapping
// ErrAggregationFailed so callers can treat it as a partial success.
func SubmitReview(db Store, ctx context.Context, tourId string, user *mongodb.UserDb, req NewReviewRequest) (Review, error) {
	if err := validateNewReview(req); err != nil {
		return Review{}, err
	}

	exists, err := db.TourExists(ctx, tourId)
	if err != nil {
		return Review{}, err
	}
	if !exists {
		return Review{}, fmt.Errorf("%w: %s", ErrTourNotFound, tourId)
	}

	reviewDb, err := db.AddReview(ctx, mongodb.ReviewDb{
		TourId:   tourId,
		UserId:   user.Id,
		UserName: user.Name,
		Text:     req.Text,
		Rating:   req.Rating,
	})
	if err != nil {
		return Review{}, err
	}
	review := mapDbReviewToReview(reviewDb)

	if err := RecomputeTourRating(db, ctx, tourId); err != nil {
		return review, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	return review, nil
}

func GetReviewsByTourId(db Store, ctx context.Context, tourId string) ([]Review, error) {
	reviewsDb, err := db.GetReviewsByTourId(ctx, tourId)
	if err != nil {
		return nil, err
	}

	allReviews := make([]Review, 0, len(reviewsDb))
	for _, reviewDb := range reviewsDb {
		allReviews = append(allReviews, mapDbReviewToReview(reviewDb))
	}

	return allReviews, nil
}
