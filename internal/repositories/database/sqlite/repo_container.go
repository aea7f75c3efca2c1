package sqlite

import (
	"github.com/jmoiron/sqlx"
	portsrepo "github.com/kipubooks/kipu-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository over a shared
// connection pool.
func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newSQLiteUserRepository(db),
		ReceiptRepo: newSQLiteReceiptRepository(db),
	}
}
