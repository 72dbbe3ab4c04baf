package reviews

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/user1094629480/tours-backend/internal/mongodb"
)

// fakeStore is an in-memory Store for exercising the review workflow
// without MongoDB.
type fakeStore struct {
	mu      sync.Mutex
	tours   map[string]*mongodb.TourDb
	reviews map[string][]mongodb.ReviewDb
	nextId  int

	failListReviews bool
	failUpdateTour  bool
	aggregateWrites int
}

func newFakeStore(tourIds ...string) *fakeStore {
	s := &fakeStore{
		tours:   make(map[string]*mongodb.TourDb),
		reviews: make(map[string][]mongodb.ReviewDb),
	}
	for _, id := range tourIds {
		s.tours[id] = &mongodb.TourDb{Id: id}
	}
	return s
}

func (s *fakeStore) AddReview(ctx context.Context, review mongodb.ReviewDb) (mongodb.ReviewDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextId++
	review.Id = "review-" + strconv.Itoa(s.nextId)
	review.CreatedAt = time.Now()
	s.reviews[review.TourId] = append(s.reviews[review.TourId], review)
	return review, nil
}

func (s *fakeStore) GetReviewsByTourId(ctx context.Context, tourId string) ([]mongodb.ReviewDb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failListReviews {
		return nil, errors.New("fake store: list reviews failed")
	}
	out := make([]mongodb.ReviewDb, len(s.reviews[tourId]))
	copy(out, s.reviews[tourId])
	return out, nil
}

func (s *fakeStore) TourExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tours[id]
	return ok, nil
}

func (s *fakeStore) UpdateTourAggregate(ctx context.Context, tourId string, rating float64, reviewCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUpdateTour {
		return errors.New("fake store: update tour failed")
	}
	tour, ok := s.tours[tourId]
	if !ok {
		return mongodb.ErrRecordNotFound
	}
	tour.Rating = rating
	tour.ReviewCount = reviewCount
	s.aggregateWrites++
	return nil
}

func (s *fakeStore) tour(id string) mongodb.TourDb {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.tours[id]
}
