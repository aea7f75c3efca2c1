package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (*sqlx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx *sqlx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx *sqlx.Tx) error
}
