package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	EventsCollection   *mongo.Collection
	BookingsCollection *mongo.Collection
	UserCollection     *mongo.Collection
	Client             *mongo.Client
)

// Init connects to MongoDB and binds the collections. Called once from main.
func Init() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	Client = client

	EventsCollection = Client.Database("trasfertedb").Collection("events")
	BookingsCollection = Client.Database("trasfertedb").Collection("bookings")
	UserCollection = Client.Database("trasfertedb").Collection("users")
	return nil
}

// Ready reports whether the connection has been established. Gateway
// operations refuse to run before this is true.
func Ready() bool {
	return Client != nil
}

func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
