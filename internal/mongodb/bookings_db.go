package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type BookingDb struct {
	Id        string    `json:"id" bson:"_id"`
	TourId    string    `json:"tourId" bson:"tourId"`
	UserId    string    `json:"userId" bson:"userId"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Travelers int       `json:"travelers" bson:"travelers"`
	StartDate string    `json:"startDate" bson:"startDate"`
	EndDate   string    `json:"endDate" bson:"endDate"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) AddBooking(ctx context.Context, booking BookingDb) (BookingDb, error) {
	coll := db.Collection(BookingsCollection)

	booking.Id = primitive.NewObjectID().Hex()
	booking.CreatedAt = time.Now()

	if _, err := coll.InsertOne(ctx, booking); err != nil {
		return BookingDb{}, err
	}

	return booking, nil
}

func (db *DB) GetBookingsByUserId(ctx context.Context, userId string) ([]BookingDb, error) {
	coll := db.Collection(BookingsCollection)

	filter := bson.M{"userId": userId}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return []BookingDb{}, err
	}
	defer cursor.Close(ctx)

	bookingsDb := []BookingDb{}
	if err := cursor.All(ctx, &bookingsDb); err != nil {
		return []BookingDb{}, err
	}

	return bookingsDb, nil
}
