// Package persistence selects the account store from configuration.
package persistence

import (
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/infra/persistence/mongo"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the account store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// StoreResult exposes the repository and the transaction manager of the selected store.
type StoreResult struct {
	fx.Out

	AccountRepo repository.AccountRepository
	TxManager   repository.TransactionManager
}

// NewStore returns the MongoDB store when mongo.uri is configured and the in-memory store otherwise.
func NewStore(params StoreParams) (StoreResult, error) {
	if params.Config.Mongo == nil || params.Config.Mongo.URI == "" {
		params.Logger.Warn("Mongo is not configured, accounts are kept in memory")
		store := memory.NewStore()

		return StoreResult{
			AccountRepo: memory.NewAccountRepository(store),
			TxManager:   memory.NewTransactionManager(store),
		}, nil
	}

	store, err := mongo.New(params.Lc, params.Config.Mongo, params.Logger)
	if err != nil {
		return StoreResult{}, err
	}

	params.Logger.Info("Using MongoDB account store",
		slog.String("database", params.Config.Mongo.Database),
		slog.String("collection", params.Config.Mongo.Collection),
	)

	return StoreResult{
		AccountRepo: mongo.NewAccountRepository(store),
		TxManager:   mongo.NewTransactionManager(store),
	}, nil
}
