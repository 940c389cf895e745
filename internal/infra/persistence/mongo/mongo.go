// Package mongo contains the concrete implementation of the persistence layer using MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/lifecycle"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const uniqueDeviceIndex = "unique_device_id"

// Store holds the connected client and the account collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New creates the MongoDB client and registers its lifecycle hooks: ping and index
// creation on start, disconnect on stop.
func New(lc fx.Lifecycle, cfg *config.MongoConfig, logger *slog.Logger) (*Store, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := cfg.Collection
	if collection == "" {
		collection = model.AccountCollection
	}

	store := &Store{
		client:     client,
		collection: client.Database(cfg.Database).Collection(collection),
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := store.EnsureIndexes(ctx); err != nil {
				return err
			}

			logger.Info("MongoDB connected",
				slog.String("database", cfg.Database),
				slog.String("collection", collection),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return store, nil
}

// EnsureIndexes creates the account indexes. The unique multikey index on
// devices.device_id makes a device belong to at most one account.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "devices.device_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(uniqueDeviceIndex),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create account indexes")
	}

	return nil
}

// Collection returns the account collection.
func (s *Store) Collection() *mongo.Collection {
	return s.collection
}

// Client returns the underlying driver client.
func (s *Store) Client() *mongo.Client {
	return s.client
}
