package favorites

import (
	"errors"
	"net/http"
)

var (
	ErrTourIdRequired   = errors.New("tour id is required")
	ErrTourNotFound     = errors.New("tour not found")
	ErrAlreadyFavorite  = errors.New("tour is already in favorites")
	ErrFavoriteNotFound = errors.New("tour not found in favorites")
)

var ErrorMap = map[error]int{
	ErrTourIdRequired:   http.StatusBadRequest,
	ErrTourNotFound:     http.StatusNotFound,
	ErrAlreadyFavorite:  http.StatusConflict,
	ErrFavoriteNotFound: http.StatusNotFound,
}
