package reviews

import "github.com/user1094629480/tours-backend/internal/mongodb"

func mapDbReviewToReview(reviewDb mongodb.ReviewDb) Review {
	return Review{
		Id:        reviewDb.Id,
		TourId:    reviewDb.TourId,
		UserId:    reviewDb.UserId,
		UserName:  reviewDb.UserName,
		Text:      reviewDb.Text,
		Rating:    reviewDb.Rating,
		CreatedAt: reviewDb.CreatedAt,
	}
}
