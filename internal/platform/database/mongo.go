package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const pingTimeout = 3 * time.Second

// Connect builds the client without dialing; the server starts even when
// the database is down and the readiness gate holds traffic until the
// health probe sees it.
func Connect(uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("database.Connect: %w", err)
	}
	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the unique email constraint, the keyed access
// token lookup and the newest-first listing index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "accessToken", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("database.EnsureIndexes: users: %w", err)
	}
	_, err = db.Collection("messages").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("database.EnsureIndexes: messages: %w", err)
	}
	return nil
}

// Health maintains the binary connected/disconnected state behind the
// readiness gate with a supervised background ping loop. Index creation
// piggybacks on the first successful probe so a server booted against a
// down database still converges once it comes up.
type Health struct {
	client   *mongo.Client
	db       *mongo.Database
	interval time.Duration
	ready    atomic.Bool
	indexed  atomic.Bool
}

func NewHealth(client *mongo.Client, db *mongo.Database, interval time.Duration) *Health {
	return &Health{client: client, db: db, interval: interval}
}

func (h *Health) Ready() bool {
	return h.ready.Load()
}

// Run probes until ctx is cancelled. Call it from its own goroutine.
func (h *Health) Run(ctx context.Context) {
	h.probe(ctx)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Health) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := h.client.Ping(pingCtx, readpref.Primary())
	up := err == nil
	was := h.ready.Swap(up)
	if up != was {
		if up {
			slog.Info("database connected")
		} else {
			slog.Warn("database unavailable", "error", err)
		}
	}

	if up && !h.indexed.Load() {
		if err := EnsureIndexes(pingCtx, h.db); err != nil {
			slog.Warn("index creation failed, will retry", "error", err)
		} else {
			h.indexed.Store(true)
		}
	}
}
