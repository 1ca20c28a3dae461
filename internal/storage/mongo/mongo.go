// Package mongo provides the durable document-store implementations of the
// transcript and content stores.
package mongo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/defnotwig/portfolio/backend/internal/config"
)

const (
	serverSelectionTimeout = 5 * time.Second
	socketTimeout          = 45 * time.Second
)

// Connect opens a client, verifies the connection with a ping, and returns
// the configured database handle.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("MONGO_URI is not configured")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetSocketTimeout(socketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Printf("[mongo] connected to database %s", cfg.Database)
	return client.Database(cfg.Database), nil
}

// Disconnect closes the database's underlying client.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
