package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gamesapi/internal/config"
)

var mongoConnect = mongo.Connect

// MongoClientOptions builds driver options from config.
// Timeout bounds every operation issued through the client.
func MongoClientOptions(c config.MongoConfig) (*options.ClientOptions, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("invalid mongo config: uri is required")
	}
	if c.Database == "" || c.Collection == "" {
		return nil, fmt.Errorf("invalid mongo config: database and collection are required")
	}

	opts := options.Client().ApplyURI(c.URI)
	if c.Timeout > 0 {
		opts.SetTimeout(c.Timeout)
		opts.SetConnectTimeout(c.Timeout)
		opts.SetServerSelectionTimeout(c.Timeout)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongo uri: %w", err)
	}
	return opts, nil
}

// NewMongo connects to MongoDB and verifies the primary is reachable.
// The caller owns the returned client and must Disconnect it on shutdown.
func NewMongo(ctx context.Context, c config.MongoConfig) (*mongo.Client, error) {
	opts, err := MongoClientOptions(c)
	if err != nil {
		return nil, err
	}

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// GamesCollection returns the configured games collection.
func GamesCollection(client *mongo.Client, c config.MongoConfig) *mongo.Collection {
	return client.Database(c.Database).Collection(c.Collection)
}
