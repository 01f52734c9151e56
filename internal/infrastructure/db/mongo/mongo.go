package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "site-admin"
)

// Config holds the connection settings for the interaction store.
type Config struct {
	URI      string
	Database string
	// Timeout bounds connect and the initial ping. Zero means ten seconds.
	Timeout time.Duration
}

// Store owns the client and the selected database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials cfg.URI and pings before returning, so a bad URI fails at
// startup rather than on the first lead interaction.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Database == "" {
		return nil, errors.New("mongo: database name is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// DB returns the selected database.
func (s *Store) DB() *mongo.Database { return s.db }

// Ping checks the server and the selected database, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return err
	}
	err := s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}

// Close disconnects, waiting at most five seconds for in-flight operations.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
