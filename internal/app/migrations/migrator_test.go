package migrations

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTx struct {
	pgx.Tx
	statements []string
}

func (t *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.statements = append(t.statements, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

// The version row must go through the migration's own transaction so a
// failed commit leaves no record behind.
func TestRecordMigrationUsesTransaction(t *testing.T) {
	m := NewMigrator(nil)
	tx := &recordingTx{}

	require.NoError(t, m.recordMigration(context.Background(), tx, "001"))
	require.Len(t, tx.statements, 1)
	assert.Contains(t, tx.statements[0], "INSERT INTO schema_migrations")
}
