package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/user1094629480/tours-backend/internal/config"
	"github.com/user1094629480/tours-backend/internal/mongodb"
	"github.com/user1094629480/tours-backend/internal/server"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	handler := server.NewServer(cfg, client)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	log.Printf("Server is running on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
