package tours

import "github.com/user1094629480/tours-backend/internal/mongodb"

type AllToursResponse struct {
	Tours []mongodb.TourDb `json:"tours"`
	Count int              `json:"count"`
}
