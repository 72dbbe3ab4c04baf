package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/user1094629480/tours-backend/internal/auth"
	"github.com/user1094629480/tours-backend/internal/logx"
	"github.com/user1094629480/tours-backend/internal/services/favorites"
)

func (api *API) AddFavorite(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	var req favorites.NewFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	newFavorite, err := favorites.AddFavorite(api.Db, r.Context(), currentUser.Id, req.TourId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(favorites.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	respondWithJSON(w, http.StatusCreated, newFavorite)
}

func (api *API) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	tourId := r.PathValue("tourId")
	if tourId == "" {
		respondWithError(w, http.StatusBadRequest, "Tour id is required")
		return
	}

	if err := favorites.RemoveFavorite(api.Db, r.Context(), currentUser.Id, tourId); err != nil {
		if statusCode, ok := getErrorStatusCode(favorites.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Tour %s removed from favorites", tourId)})
}

func (api *API) GetFavorites(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	allFavorites, err := favorites.GetUserFavorites(api.Db, r.Context(), currentUser.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	respondWithJSON(w, http.StatusOK, favorites.AllFavoritesResponse{Favorites: allFavorites, Count: len(allFavorites)})
}
