package utils

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the process-wide MongoDB client
var MongoClient *mongo.Client

// MongoDatabase is the database name all repositories resolve collections against
var MongoDatabase string

type MongoSettings struct {
	URI             string
	Database        string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	RetryWrites     bool
}

// InitMongoClient connects the pooled client. Fatal on failure; the process
// cannot serve anything without its store.
func InitMongoClient(settings MongoSettings) {
	clientOptions := options.Client().
		ApplyURI(settings.URI).
		SetMaxPoolSize(settings.MaxPoolSize).
		SetMinPoolSize(settings.MinPoolSize).
		SetMaxConnIdleTime(settings.MaxConnIdleTime).
		SetRetryWrites(settings.RetryWrites)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	MongoClient = client
	MongoDatabase = settings.Database
}

// PingMongo reports store reachability for the health probe.
func PingMongo(ctx context.Context) error {
	if MongoClient == nil {
		return mongo.ErrClientDisconnected
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return MongoClient.Ping(ctx, readpref.Primary())
}
