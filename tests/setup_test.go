package tests

import (
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/user1094629480/tours-backend/internal/config"
	"github.com/user1094629480/tours-backend/internal/mongodb"
	"github.com/user1094629480/tours-backend/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	testClient *mongo.Client
	testServer *httptest.Server
)

const (
	TEST_DB_NAME      = "testDb"
	TEST_TOKEN_SECRET = "test-token-secret"
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start mongo container: %v", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("failed to get mongo endpoint: %v", err)
	}
	uri := "mongodb://" + endpoint

	testClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to test mongo: %v", err)
	}

	cfg := config.Config{
		MongoURI:    uri,
		MongoDBName: TEST_DB_NAME,
		TokenSecret: TEST_TOKEN_SECRET,
		Environment: "development",
	}
	handler := server.NewServer(cfg, testClient)
	testServer = httptest.NewServer(handler)

	code := m.Run()

	// Cleanup
	testServer.Close()
	_ = testClient.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)

	collections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	for _, coll := range collections {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			t.Fatalf("failed to drop collection %s: %v", coll, err)
		}
	}

	// The favorites uniqueness constraint lives in an index, so the suite
	// needs the indexes back after dropping the collections.
	if err := mongodb.CreateAllIndexes(ctx, db, false); err != nil {
		t.Fatalf("failed to recreate indexes: %v", err)
	}
}

func loadToursFixture(t *testing.T) []mongodb.TourDb {
	t.Helper()

	absPath, err := filepath.Abs("fixtures/tours.json")
	if err != nil {
		t.Fatalf("failed to get abs path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		t.Fatalf("failed to read fixture file %s: %v", absPath, err)
	}

	var docs []bson.M
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("failed to unmarshal fixture JSON: %v", err)
	}

	var tours []mongodb.TourDb
	raw, err := json.Marshal(docs)
	if err != nil {
		t.Fatalf("failed to re-marshal fixture docs: %v", err)
	}
	if err := json.Unmarshal(raw, &tours); err != nil {
		t.Fatalf("failed to map fixture docs to tours: %v", err)
	}
	for i, d := range docs {
		if id, ok := d["_id"].(string); ok {
			tours[i].Id = id
		}
	}

	return tours
}

func seedTours(t *testing.T, tours []mongodb.TourDb) {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.ToursCollection)

	docs := make([]interface{}, len(tours))
	for i, tour := range tours {
		docs[i] = tour
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		t.Fatalf("failed to insert seed tours: %v", err)
	}
}
