package memory

import (
	"context"

	"accounts/internal/domain/repository"
)

// transactionManager implements the domain's TransactionManager interface for the in-memory store.
type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories bound to the copy of one transaction.
type repositoryFactory struct {
	repo *accountRepository
}

// NewAccountRepository returns an account repository bound to the transaction.
func (f *repositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.repo
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn against a copy of the store and publishes the copy only when fn succeeds.
// Repositories obtained outside fn must not be used inside it: the store lock is held.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, txRepoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := tm.store.state.clone()
	repo := NewAccountRepository(tm.store).(*accountRepository)
	repo.tx = tx

	// A panic in fn unwinds past the swap, discarding the copy.
	if err := fn(ctx, &repositoryFactory{repo: repo}); err != nil {
		return err
	}

	tm.store.state = tx

	return nil
}
