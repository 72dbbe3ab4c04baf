package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user1094629480/tours-backend/internal/services/tours"
)

func TestGetTours(t *testing.T) {
	resetDB(t)

	fixture := loadToursFixture(t)
	seedTours(t, fixture)

	t.Run("Lists all tours", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/tours")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody tours.AllToursResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Equal(t, len(fixture), respBody.Count)
	})

	t.Run("Filters by country", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/tours?country=" + "%D0%A3%D0%BA%D1%80%D0%B0%D1%97%D0%BD%D0%B0") // Україна
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody tours.AllToursResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Equal(t, 2, respBody.Count)
		for _, tour := range respBody.Tours {
			require.Equal(t, "Україна", tour.Country)
		}
	})

	t.Run("Sorts by price descending", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/tours?sortBy=price&sortOrder=desc")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody tours.AllToursResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Equal(t, len(fixture), respBody.Count)
		for i := 1; i < len(respBody.Tours); i++ {
			require.GreaterOrEqual(t, respBody.Tours[i-1].Price, respBody.Tours[i].Price)
		}
	})

	t.Run("Unknown sort field returns 400", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/tours?sortBy=secretField")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetTourById(t *testing.T) {
	resetDB(t)

	fixture := loadToursFixture(t)
	seedTours(t, fixture)
	expectedTour := fixture[0]

	t.Run("Returns the tour with its aggregate fields", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/tours/" + expectedTour.Id)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var respBody struct {
			Id          string  `json:"id"`
			Name        string  `json:"name"`
			Rating      float64 `json:"rating"`
			ReviewCount int     `json:"reviewCount"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
		require.Equal(t, expectedTour.Id, respBody.Id)
		require.Equal(t, expectedTour.Name, respBody.Name)
		require.Zero(t, respBody.Rating)
		require.Zero(t, respBody.ReviewCount)
	})

	t.Run("Unknown tour returns 404", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/tours/no-such-tour")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
