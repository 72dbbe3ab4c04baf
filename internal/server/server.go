package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user1094629480/tours-backend/internal/api"
	"github.com/user1094629480/tours-backend/internal/config"
	"github.com/user1094629480/tours-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer builds the full handler chain: routes, then auth on the
// protected ones, wrapped in request-id logging, CORS and metrics.
func NewServer(cfg config.Config, client *mongo.Client) http.Handler {
	db := mongodb.NewDB(client, cfg.MongoDBName)
	a := api.NewAPI(db, &cfg.TokenSecret)

	requireAuth := RequireAuth(cfg.TokenSecret, db)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /signup", a.SignUpHandler)
	mux.HandleFunc("POST /login", a.LoginHandler)

	mux.HandleFunc("GET /tours", a.GetTours)
	mux.HandleFunc("GET /tours/{id}", a.GetTourById)
	mux.HandleFunc("GET /tours/{tourId}/reviews", a.GetTourReviews)
	mux.Handle("POST /tours/{tourId}/reviews", requireAuth(http.HandlerFunc(a.AddReview)))

	mux.Handle("POST /bookings", requireAuth(http.HandlerFunc(a.CreateBooking)))
	mux.Handle("GET /my-bookings", requireAuth(http.HandlerFunc(a.GetMyBookings)))

	mux.Handle("POST /favorites", requireAuth(http.HandlerFunc(a.AddFavorite)))
	mux.Handle("DELETE /favorites/{tourId}", requireAuth(http.HandlerFunc(a.RemoveFavorite)))
	mux.Handle("GET /favorites", requireAuth(http.HandlerFunc(a.GetFavorites)))

	var handler http.Handler = mux
	handler = MetricsMiddleware(handler)
	handler = CORS(cfg)(handler)
	handler = RequestIdMiddleware(handler)

	return handler
}
