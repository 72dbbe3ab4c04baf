package users

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUserAlreadyExists = errors.New("a user with this email already exists")
	ErrInvalidUserReq    = errors.New("invalid signup request")
)

var ErrorMap = map[error]int{
	ErrUserAlreadyExists: http.StatusConflict,
	ErrInvalidUserReq:    http.StatusBadRequest,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateNewUser(req NewUserRequest) error {
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
		return fmt.Errorf("%w: check fields %s", ErrInvalidUserReq, strings.Join(fields, ", "))
	}

	return err
}
