package api

import (
	"net/http"

	"github.com/user1094629480/tours-backend/internal/logx"
	"github.com/user1094629480/tours-backend/internal/services/tours"
)

func (api *API) GetTours(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	country := query.Get("country")
	sortBy := query.Get("sortBy")
	sortOrder := query.Get("sortOrder")

	allTours, err := tours.GetTours(api.Db, r.Context(), country, sortBy, sortOrder)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(tours.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch tours from database")
		return
	}

	respondWithJSON(w, http.StatusOK, tours.AllToursResponse{Tours: allTours, Count: len(allTours)})
}

func (api *API) GetTourById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	tourId := r.PathValue("id")
	if tourId == "" {
		respondWithError(w, http.StatusBadRequest, "Tour id is required")
		return
	}

	tour, err := tours.GetTourById(api.Db, r.Context(), tourId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(tours.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting tour")
		return
	}

	respondWithJSON(w, http.StatusOK, tour)
}
