package reviews

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrTourNotFound        = errors.New("tour not found")
	ErrInvalidReviewText   = errors.New("review text must be between 10 and 500 characters")
	ErrInvalidReviewRating = errors.New("rating must be an integer between 1 and 5")

	// ErrAggregationFailed means the review itself was persisted but the
	// tour's aggregate fields could not be refreshed. The aggregate stays
	// stale until the next submission recomputes it.
	ErrAggregationFailed = errors.New("tour rating aggregation failed")
)

var ErrorMap = map[error]int{
	ErrTourNotFound:        http.StatusNotFound,
	ErrInvalidReviewText:   http.StatusBadRequest,
	ErrInvalidReviewRating: http.StatusBadRequest,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateNewReview(req NewReviewRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			switch fieldErr.Field() {
			case "Text":
				return fmt.Errorf("%w (got %d)", ErrInvalidReviewText, len(req.Text))
			case "Rating":
				return fmt.Errorf("%w (got %d)", ErrInvalidReviewRating, req.Rating)
			}
		}
	}

	return err
}
