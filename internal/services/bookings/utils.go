package bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StatusPending is the status every new booking starts with.
const StatusPending = "pending"

var (
	ErrTourNotFound      = errors.New("tour not found")
	ErrInvalidBookingReq = errors.New("invalid booking request")
)

var ErrorMap = map[error]int{
	ErrTourNotFound:      http.StatusNotFound,
	ErrInvalidBookingReq: http.StatusBadRequest,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateNewBooking(req NewBookingRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fieldErr.Field())
		}
		return fmt.Errorf("%w: check fields %s", ErrInvalidBookingReq, strings.Join(fields, ", "))
	}

	return err
}
