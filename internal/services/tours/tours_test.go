package tours

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user1094629480/tours-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeStore struct {
	tours      []mongodb.TourDb
	lastFilter bson.M
	lastArgs   int
}

func (s *fakeStore) GetTours(ctx context.Context, args ...any) ([]mongodb.TourDb, error) {
	s.lastArgs = len(args)
	if len(args) > 0 {
		if filter, ok := args[0].(bson.M); ok {
			s.lastFilter = filter
		}
	}
	return s.tours, nil
}

func (s *fakeStore) GetTourById(ctx context.Context, id string) (mongodb.TourDb, error) {
	for _, tour := range s.tours {
		if tour.Id == id {
			return tour, nil
		}
	}
	return mongodb.TourDb{}, fmt.Errorf("tours collection: %w", mongodb.ErrRecordNotFound)
}

func TestGetTours(t *testing.T) {
	store := &fakeStore{tours: []mongodb.TourDb{{Id: "tour-1"}, {Id: "tour-2"}}}

	t.Run("No filters", func(t *testing.T) {
		toursDb, err := GetTours(store, context.Background(), "", "", "")
		require.NoError(t, err)
		require.Len(t, toursDb, 2)
		require.Empty(t, store.lastFilter)
		require.Equal(t, 1, store.lastArgs)
	})

	t.Run("Country filter", func(t *testing.T) {
		_, err := GetTours(store, context.Background(), "Україна", "", "")
		require.NoError(t, err)
		require.Equal(t, bson.M{"country": "Україна"}, store.lastFilter)
	})

	t.Run("Whitelisted sort field adds find options", func(t *testing.T) {
		_, err := GetTours(store, context.Background(), "", "price", "desc")
		require.NoError(t, err)
		require.Equal(t, 2, store.lastArgs)
	})

	t.Run("Unknown sort field is rejected", func(t *testing.T) {
		_, err := GetTours(store, context.Background(), "", "passwordHash", "")
		require.ErrorIs(t, err, ErrInvalidSortField)
	})
}

func TestGetTourById(t *testing.T) {
	store := &fakeStore{tours: []mongodb.TourDb{{Id: "tour-1", Name: "Карпатські вершини"}}}

	t.Run("Found", func(t *testing.T) {
		tourDb, err := GetTourById(store, context.Background(), "tour-1")
		require.NoError(t, err)
		require.Equal(t, "Карпатські вершини", tourDb.Name)
	})

	t.Run("Missing tour maps to service error", func(t *testing.T) {
		_, err := GetTourById(store, context.Background(), "tour-404")
		require.ErrorIs(t, err, ErrTourNotFound)
	})
}
