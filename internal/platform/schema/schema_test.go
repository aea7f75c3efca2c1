package schema_test

import (
	"path/filepath"
	"testing"

	"github.com/kipubooks/kipu-backend/internal/platform/schema"
	"github.com/kipubooks/kipu-backend/pkg/database"
	"github.com/stretchr/testify/require"
)

func TestEnsureIsIdempotent(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "schema_test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, schema.Ensure(db.DB))
	// A second run against the already-migrated file must be a clean no-op.
	require.NoError(t, schema.Ensure(db.DB))

	// All tables and late-revision columns must be present.
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM users`))
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM receipts`))
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM line_items`))
	require.NoError(t, db.Get(&n, `SELECT COUNT(nickname) FROM users`))
	require.NoError(t, db.Get(&n, `SELECT COUNT(refresh_token_hash) FROM users`))
}
