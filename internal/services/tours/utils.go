package tours

import (
	"errors"
	"net/http"
)

var (
	ErrTourNotFound     = errors.New("tour not found")
	ErrInvalidSortField = errors.New("cannot sort by this field")
)

var ErrorMap = map[error]int{
	ErrTourNotFound:     http.StatusNotFound,
	ErrInvalidSortField: http.StatusBadRequest,
}

var sortableFields = map[string]bool{
	"name":        true,
	"price":       true,
	"rating":      true,
	"reviewCount": true,
}
