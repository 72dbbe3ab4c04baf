package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/user1094629480/tours-backend/internal/auth"
	"github.com/user1094629480/tours-backend/internal/logx"
	"github.com/user1094629480/tours-backend/internal/services/reviews"
)

func (api *API) GetTourReviews(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	tourId := r.PathValue("tourId")
	if tourId == "" {
		respondWithError(w, http.StatusBadRequest, "Tour id is required")
		return
	}

	allReviews, err := reviews.GetReviewsByTourId(api.Db, r.Context(), tourId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, reviews.AllReviewsFromTour{Reviews: allReviews, Count: len(allReviews)})
}

func (api *API) AddReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	tourId := r.PathValue("tourId")
	if tourId == "" {
		respondWithError(w, http.StatusBadRequest, "Tour id is required")
		return
	}

	var req reviews.NewReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	newReview, err := reviews.SubmitReview(api.Db, r.Context(), tourId, currentUser, req)
	if err != nil {
		// The review was persisted; only the tour aggregate is stale. It
		// self-heals on the next submission, so this is still a 201 to the
		// client, and the log line keeps it distinguishable from a lost
		// write.
		if errors.Is(err, reviews.ErrAggregationFailed) {
			logger.Printf("WARN: review %s saved but aggregate is stale: %v", newReview.Id, err)
			respondWithJSON(w, http.StatusCreated, newReview)
			return
		}
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	respondWithJSON(w, http.StatusCreated, newReview)
}
