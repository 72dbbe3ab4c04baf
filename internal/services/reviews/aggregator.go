package reviews

import (
	"context"
	"fmt"
	"math"
)

/*
RecomputeTourRating re-derives a tour's rating and reviewCount from the full
live review set and writes them back.

It always reads every review rather than applying a delta to the stored
average, so it is idempotent and safe to re-run: two submissions racing on
the same tour can each write an aggregate missing the other's review, but
the next recompute for that tour repairs the fields. With zero reviews the
call is a no-op and the stored fields are left untouched.
*/
func RecomputeTourRating(db Store, ctx context.Context, tourId string) error {
	reviewsDb, err := db.GetReviewsByTourId(ctx, tourId)
	if err != nil {
		return fmt.Errorf("read reviews for tour %s: %w", tourId, err)
	}

	if len(reviewsDb) == 0 {
		return nil
	}

	sum := 0
	for _, review := range reviewsDb {
		sum += review.Rating
	}
	average := roundToOneDecimal(float64(sum) / float64(len(reviewsDb)))

	if err := db.UpdateTourAggregate(ctx, tourId, average, len(reviewsDb)); err != nil {
		return fmt.Errorf("write aggregate for tour %s: %w", tourId, err)
	}

	return nil
}

// roundToOneDecimal rounds half away from zero.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
