package seeder

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/saherflow/dashseed/internal/database"
)

var errNoCount = errors.New("rows affected not supported")

type countlessResult struct{}

func (countlessResult) LastInsertId() (int64, error) { return 0, nil }
func (countlessResult) RowsAffected() (int64, error) { return 0, errNoCount }

// execOnly answers every Exec with a result that cannot count rows.
type execOnly struct {
	queries []string
}

func (q *execOnly) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	panic("unexpected query: " + query)
}

func (q *execOnly) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q.queries = append(q.queries, query)
	return countlessResult{}, nil
}

func TestClearRowsAffectedUnavailable(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dialect, err := database.DialectFor("postgresql")
	require.NoError(t, err)

	q := &execOnly{}
	st := newStore(q, dialect, zap.New(core))

	n, err := st.Clear(context.Background(), TableWidgetTypes)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{`DELETE FROM "widget_types"`}, q.queries)

	entries := logs.FilterMessage("rows affected unavailable").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, TableWidgetTypes, fields["table"])
	assert.Equal(t, errNoCount.Error(), fields["error"])
}
