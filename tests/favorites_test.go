package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user1094629480/tours-backend/internal/services/favorites"
	"github.com/user1094629480/tours-backend/internal/services/users"
)

func TestFavorites(t *testing.T) {
	resetDB(t)

	_, token := addUser(t, users.NewUserRequest{
		Name:     "Favorites User",
		Email:    "favorites@example.com",
		Password: "testpass123",
	})

	fixture := loadToursFixture(t)
	seedTours(t, fixture)
	tour := fixture[0]

	t.Run("Adds a tour to favorites", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, testServer.URL+"/favorites",
			favorites.NewFavoriteRequest{TourId: tour.Id}, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Adding the same tour twice returns 409", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, testServer.URL+"/favorites",
			favorites.NewFavoriteRequest{TourId: tour.Id}, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Missing tour id returns 400", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, testServer.URL+"/favorites",
			favorites.NewFavoriteRequest{}, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown tour returns 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, testServer.URL+"/favorites",
			favorites.NewFavoriteRequest{TourId: "no-such-tour"}, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Lists favorites with tours embedded", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, testServer.URL+"/favorites", nil, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody favorites.AllFavoritesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Equal(t, 1, respBody.Count)
		require.NotNil(t, respBody.Favorites[0].Tour)
		require.Equal(t, tour.Id, respBody.Favorites[0].Tour.Id)
	})

	t.Run("Removes a favorite", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, testServer.URL+"/favorites/"+tour.Id, nil, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listResp := doJSON(t, http.MethodGet, testServer.URL+"/favorites", nil, token)
		defer listResp.Body.Close()

		var respBody favorites.AllFavoritesResponse
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&respBody))
		require.Zero(t, respBody.Count)
	})

	t.Run("Removing a tour not in favorites returns 404", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, testServer.URL+"/favorites/"+tour.Id, nil, token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
