package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tableNames(t *testing.T, db *Database) map[string]bool {
	t.Helper()
	rows, err := db.ReadWrite.Query(
		`SELECT name FROM sqlite_schema WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, rows.Close())
	}()
	names := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	require.NoError(t, rows.Err())
	return names
}

func TestNewDatabaseCreatesSchema(t *testing.T) {
	t.Parallel()
	db, err := NewDatabase(context.Background(), ":memory:", newTestLogger())
	require.NoError(t, err)

	names := tableNames(t, db)
	for _, want := range []string{"leads", "goals", "walk_ins", "invitations", "training_sessions"} {
		require.True(t, names[want], "missing table %s", want)
	}
}

func TestMigrateAddsAndDropsTables(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := NewDatabase(ctx, ":memory:", newTestLogger())
	require.NoError(t, err)

	withExtra := schemaDefinition + "\nCREATE TABLE extra (id INTEGER PRIMARY KEY, note TEXT);\n"
	require.NoError(t, db.migrate(ctx, withExtra))
	require.True(t, tableNames(t, db)["extra"])

	// Migrating back to the original schema drops the extra table.
	require.NoError(t, db.migrate(ctx, schemaDefinition))
	require.False(t, tableNames(t, db)["extra"])
}

func TestMigrateAddsColumnKeepingData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := NewDatabase(ctx, ":memory:", newTestLogger())
	require.NoError(t, err)

	_, err = db.ReadWrite.ExecContext(ctx,
		`INSERT INTO invitations (email, invited_by) VALUES ('dana@summitmotors.test', 'manager-1')`)
	require.NoError(t, err)

	altered := `
CREATE TABLE invitations
(
    email      TEXT PRIMARY KEY,
    invited_by TEXT NOT NULL,
    note       TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
	require.NoError(t, db.migrate(ctx, altered))

	var email string
	err = db.ReadWrite.QueryRowContext(ctx, `SELECT email FROM invitations`).Scan(&email)
	require.NoError(t, err)
	require.Equal(t, "dana@summitmotors.test", email)
}
