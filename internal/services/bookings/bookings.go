package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/user1094629480/tours-backend/internal/mongodb"
)

// Store is the slice of the database this service needs.
type Store interface {
	AddBooking(ctx context.Context, booking mongodb.BookingDb) (mongodb.BookingDb, error)
	GetBookingsByUserId(ctx context.Context, userId string) ([]mongodb.BookingDb, error)
	TourExists(ctx context.Context, id string) (bool, error)
	GetTourById(ctx context.Context, id string) (mongodb.TourDb, error)
}

func CreateBooking(db Store, ctx context.Context, user *mongodb.UserDb, req NewBookingRequest) (mongodb.BookingDb, error) {
	if err := validateNewBooking(req); err != nil {
		return mongodb.BookingDb{}, err
	}

	exists, err := db.TourExists(ctx, req.TourId)
	if err != nil {
		return mongodb.BookingDb{}, err
	}
	if !exists {
		return mongodb.BookingDb{}, fmt.Errorf("%w: %s", ErrTourNotFound, req.TourId)
	}

	return db.AddBooking(ctx, mongodb.BookingDb{
		TourId:    req.TourId,
		UserId:    user.Id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Travelers: req.Travelers,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    StatusPending,
	})
}

// GetUserBookings returns the caller's bookings, newest first, each with its
// tour embedded when the tour still exists.
func GetUserBookings(db Store, ctx context.Context, userId string) ([]BookingWithTour, error) {
	bookingsDb, err := db.GetBookingsByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	allBookings := make([]BookingWithTour, 0, len(bookingsDb))
	for _, bookingDb := range bookingsDb {
		withTour := BookingWithTour{BookingDb: bookingDb}

		tourDb, err := db.GetTourById(ctx, bookingDb.TourId)
		if err == nil {
			withTour.Tour = &tourDb
		} else if !errors.Is(err, mongodb.ErrRecordNotFound) {
			return nil, err
		}

		allBookings = append(allBookings, withTour)
	}

	return allBookings, nil
}
