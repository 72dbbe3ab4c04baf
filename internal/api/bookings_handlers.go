package api

import (
	"encoding/json"
	"net/http"

	"github.com/user1094629480/tours-backend/internal/auth"
	"github.com/user1094629480/tours-backend/internal/logx"
	"github.com/user1094629480/tours-backend/internal/services/bookings"
)

func (api *API) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	var req bookings.NewBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	newBooking, err := bookings.CreateBooking(api.Db, r.Context(), currentUser, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(bookings.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	respondWithJSON(w, http.StatusCreated, newBooking)
}

func (api *API) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	allBookings, err := bookings.GetUserBookings(api.Db, r.Context(), currentUser.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	respondWithJSON(w, http.StatusOK, bookings.AllBookingsResponse{Bookings: allBookings, Count: len(allBookings)})
}
