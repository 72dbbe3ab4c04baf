package favorites

import "github.com/user1094629480/tours-backend/internal/mongodb"

type NewFavoriteRequest struct {
	TourId string `json:"tourId"`
}

type FavoriteWithTour struct {
	mongodb.FavoriteDb
	Tour *mongodb.TourDb `json:"tour"`
}

type AllFavoritesResponse struct {
	Favorites []FavoriteWithTour `json:"favorites"`
	Count     int                `json:"count"`
}
