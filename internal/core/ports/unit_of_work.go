package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it run inside the transaction started by Begin, which is what makes the
// paired route/carrier status writes atomic: either both land or neither.
type UnitOfWork interface {
	// Begin starts a database transaction. Calling Begin twice is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is harmless, which allows the deferred-rollback
	// idiom in command handlers.
	Rollback(ctx context.Context) error

	// CarrierRepository returns a repository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// RouteRepository returns a repository bound to the current transaction.
	RouteRepository() RouteRepository
}
