package bookings

import "github.com/user1094629480/tours-backend/internal/mongodb"

type NewBookingRequest struct {
	TourId    string `json:"tourId" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Travelers int    `json:"travelers" validate:"required,min=1"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// BookingWithTour is a booking with its tour embedded for display. Tour is
// nil when the tour has been removed since the booking was made.
type BookingWithTour struct {
	mongodb.BookingDb
	Tour *mongodb.TourDb `json:"tour"`
}

type AllBookingsResponse struct {
	Bookings []BookingWithTour `json:"bookings"`
	Count    int               `json:"count"`
}
