package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		provider    string
		driver      string
		placeholder squirrel.PlaceholderFormat
		returning   bool
		isolation   sql.IsolationLevel
	}{
		{"postgresql", "pgx", squirrel.Dollar, true, sql.LevelReadCommitted},
		{"postgres", "pgx", squirrel.Dollar, true, sql.LevelReadCommitted},
		{"mysql", "mysql", squirrel.Question, false, sql.LevelReadCommitted},
		{"sqlite3", "sqlite3", squirrel.Question, true, sql.LevelDefault},
		{"sqlite", "sqlite", squirrel.Question, true, sql.LevelDefault},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			d, err := DialectFor(tt.provider)
			require.NoError(t, err)
			assert.Equal(t, tt.provider, d.Provider)
			assert.Equal(t, tt.driver, d.Driver)
			assert.Equal(t, tt.placeholder, d.Placeholder)
			assert.Equal(t, tt.returning, d.Returning)
			assert.Equal(t, tt.isolation, d.Isolation)
		})
	}
}

func TestDialectForUnsupported(t *testing.T) {
	_, err := DialectFor("mongodb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider: mongodb")
}

func TestSupportedProvidersIsCopy(t *testing.T) {
	p := SupportedProviders()
	p[0] = "oracle"
	assert.Equal(t, "postgresql", SupportedProviders()[0])
}

func TestQuote(t *testing.T) {
	pg, _ := DialectFor("postgresql")
	my, _ := DialectFor("mysql")
	lite, _ := DialectFor("sqlite")

	assert.Equal(t, `"user"`, pg.Quote("user"))
	assert.Equal(t, `"we""ird"`, pg.Quote(`we"ird`))
	assert.Equal(t, "`user`", my.Quote("user"))
	assert.Equal(t, `"user"`, lite.Quote("user"))
}

func TestBuilderPlaceholders(t *testing.T) {
	pg, _ := DialectFor("postgres")
	query, args, err := pg.Builder().
		Select("id").From("device_type").
		Where(squirrel.Eq{"type_name": "MPFM"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM device_type WHERE type_name = $1", query)
	assert.Equal(t, []any{"MPFM"}, args)

	my, _ := DialectFor("mysql")
	query, _, err = my.Builder().Delete("widget_types").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM widget_types WHERE id = ?", query)
}

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Options{Provider: "sqlite", URL: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Dialect.IsSQLite())
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(context.Background(), Options{Provider: "oracle", URL: "x"})
	require.Error(t, err)
}

func TestOpenBadPostgresURL(t *testing.T) {
	_, err := Open(context.Background(), Options{Provider: "postgresql", URL: "postgres://%zz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse connection URL")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", ErrorCode(nil))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))

	ctx := context.Background()
	db, err := Open(ctx, Options{Provider: "sqlite", URL: filepath.Join(t.TempDir(), "codes.db")})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, "CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT NOT NULL)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO t (name) VALUES (NULL)")
	require.Error(t, err)
	assert.NotEmpty(t, ErrorCode(err))
}

func TestDurationOr(t *testing.T) {
	assert.Equal(t, 5, int(durationOr(5, 9)))
	assert.Equal(t, 9, int(durationOr(0, 9)))
}
