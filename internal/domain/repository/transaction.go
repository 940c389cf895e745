package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error (or panics), the transaction is aborted. Otherwise, it's committed.
	// Repository operations must use txCtx and the repositories obtained from txRepoFactory
	// to take part in the transaction. The function may be invoked more than once when the
	// store retries a transient transaction failure.
	Execute(ctx context.Context, fn func(txCtx context.Context, txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewAccountRepository returns an AccountRepository instance bound to the current transaction.
	NewAccountRepository() AccountRepository
}
