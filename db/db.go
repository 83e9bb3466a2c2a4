package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client

	UsersCollection         *mongo.Collection
	EventsCollection        *mongo.Collection
	RegistrationsCollection *mongo.Collection
	VolunteersCollection    *mongo.Collection
	SuggestionsCollection   *mongo.Collection
	OrganizersCollection    *mongo.Collection
	MessagesCollection      *mongo.Collection
	ProposalsCollection     *mongo.Collection
)

// Enabled reports whether the remote store is configured. Both parameters
// must be present; anything less runs the whole app on the local fallback.
func Enabled() bool {
	return os.Getenv("MONGO_URI") != "" && os.Getenv("MONGO_DB") != ""
}

// Init connects to MongoDB when configured and fills in the collection
// handles. It returns false when the remote store is unconfigured or
// unreachable; the caller is expected to run on the fallback path then.
func Init(ctx context.Context) bool {
	if !Enabled() {
		log.Println("MongoDB not configured; running on local storage only")
		return false
	}

	opts := options.Client().ApplyURI(os.Getenv("MONGO_URI"))
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Printf("MongoDB unreachable: %v", err)
		return false
	}

	Client = client
	database := client.Database(os.Getenv("MONGO_DB"))

	UsersCollection = database.Collection("users")
	EventsCollection = database.Collection("events")
	RegistrationsCollection = database.Collection("registrations")
	VolunteersCollection = database.Collection("volunteers")
	SuggestionsCollection = database.Collection("suggestions")
	OrganizersCollection = database.Collection("organizers")
	MessagesCollection = database.Collection("messages")
	ProposalsCollection = database.Collection("proposals")

	return true
}

// Close disconnects the client if one was ever connected.
func Close(ctx context.Context) {
	if Client != nil {
		if err := Client.Disconnect(ctx); err != nil {
			log.Printf("MongoDB disconnect: %v", err)
		}
	}
}
