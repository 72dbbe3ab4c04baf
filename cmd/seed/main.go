package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/user1094629480/tours-backend/internal/config"
	"github.com/user1094629480/tours-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the tours collection from a JSON fixture file. Existing documents
// with the same _id are left untouched.
func main() {
	file := flag.String("file", "tests/fixtures/tours.json", "path to the tours fixture JSON")
	flag.Parse()

	_ = godotenv.Load()

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

	db := mongodb.NewDB(client, cfg.MongoDBName)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read fixture file %s: %v", *file, err)
	}

	var docs []bson.M
	if err := json.Unmarshal(data, &docs); err != nil {
		log.Fatalf("Failed to unmarshal fixture JSON: %v", err)
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		log.Fatalf("Failed to re-marshal fixture docs: %v", err)
	}
	var tours []mongodb.TourDb
	if err := json.Unmarshal(raw, &tours); err != nil {
		log.Fatalf("Failed to map fixture docs to tours: %v", err)
	}
	for i, doc := range docs {
		if id, ok := doc["_id"].(string); ok {
			tours[i].Id = id
		}
	}

	inserted := 0
	for _, tour := range tours {
		exists, err := db.TourExists(ctx, tour.Id)
		if err != nil {
			log.Fatalf("Failed to check tour %s: %v", tour.Id, err)
		}
		if exists {
			fmt.Printf("ℹ️  Tour '%s' already exists, skipping...\n", tour.Id)
			continue
		}

		if _, err := db.AddTour(ctx, tour); err != nil {
			log.Fatalf("Failed to insert tour %s: %v", tour.Id, err)
		}
		inserted++
	}

	fmt.Printf("✅ Seeded %d tours from %s\n", inserted, *file)
}
