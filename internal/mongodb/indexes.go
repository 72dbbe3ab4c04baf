package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates all indexes for the users, reviews and favorites
// collections. With reset set, existing indexes are dropped first.
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if reset {
		if err := DeleteAllIndexes(ctx, db); err != nil {
			return err
		}
	}

	if err := createUserIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	if err := createReviewIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}

	if err := createFavoriteIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create favorite indexes: %w", err)
	}

	return nil
}

func createUserIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(UsersCollection)

	// Unique index on email (case-insensitive)
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("email_unique").
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}),
	}

	return createIndexIfNotExists(ctx, coll, emailIndex, "email_unique")
}

func createReviewIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ReviewsCollection)

	// Compound index on tourId and createdAt, backing the per-tour listing
	// and the aggregator's full read
	tourCreatedIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "tourId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("tourId_1_createdAt_-1"),
	}

	return createIndexIfNotExists(ctx, coll, tourCreatedIndex, "tourId_1_createdAt_-1")
}

func createFavoriteIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(FavoritesCollection)

	// Unique index on userId and tourId so a tour can be favorited once
	favoritesIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "tourId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("userId_1_tourId_1"),
	}

	return createIndexIfNotExists(ctx, coll, favoritesIndex, "userId_1_tourId_1")
}

// DeleteAllIndexes deletes all indexes from all collections in the database
// (except the default _id_ index which cannot be deleted)
func DeleteAllIndexes(ctx context.Context, db *mongo.Database) error {
	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collName := range collections {
		coll := db.Collection(collName)

		cursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list indexes for collection '%s': %w", collName, err)
		}

		for cursor.Next(ctx) {
			var index bson.M
			if err := cursor.Decode(&index); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to decode index for collection '%s': %w", collName, err)
			}

			indexName, ok := index["name"].(string)
			if !ok {
				continue
			}

			// Skip the default _id_ index as it cannot be deleted
			if indexName == "_id_" {
				continue
			}

			if _, err := coll.Indexes().DropOne(ctx, indexName); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to delete index '%s' from collection '%s': %w", indexName, collName, err)
			}
			fmt.Printf("🗑️  Deleted index '%s' from collection '%s'\n", indexName, collName)
		}

		if err := cursor.Err(); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("cursor error for collection '%s': %w", collName, err)
		}
		cursor.Close(ctx)
	}

	return nil
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		fmt.Printf("ℹ️  Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
		return nil
	}

	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("✅ Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
