package mongo

import (
	"context"

	"accounts/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// sessionTransactionManager implements the domain's TransactionManager interface using
// MongoDB session transactions. It requires a replica set deployment.
type sessionTransactionManager struct {
	client  *mongo.Client
	factory repository.RepositoryFactory
}

// sessionRepositoryFactory implements the domain's RepositoryFactory interface.
// The session travels in the context handed to fn, so repositories need no rebinding.
type sessionRepositoryFactory struct {
	accounts repository.AccountRepository
}

// NewAccountRepository returns the account repository for use with the transaction context.
func (f *sessionRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.accounts
}

// NewTransactionManager is the constructor for sessionTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &sessionTransactionManager{
		client:  store.Client(),
		factory: &sessionRepositoryFactory{accounts: NewAccountRepository(store)},
	}
}

// Execute runs fn within a session transaction. The driver retries fn on transient
// transaction errors, so fn must not keep state between invocations.
func (tm *sessionTransactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, txRepoFactory repository.RepositoryFactory) error) error {
	sess, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	// EndSession aborts a transaction still in progress, including after a panic in fn.
	defer sess.EndSession(context.WithoutCancel(ctx))

	_, err = sess.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		return nil, fn(txCtx, tm.factory)
	})

	return err
}
