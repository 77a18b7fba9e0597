package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Options configures a connection pool.
type Options struct {
	Provider        string
	URL             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DB is a pooled database handle together with the dialect it speaks.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open creates the connection pool for the configured provider and pings it.
func Open(ctx context.Context, opts Options) (*DB, error) {
	dialect, err := DialectFor(opts.Provider)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch dialect.Driver {
	case "pgx":
		connConfig, err := pgx.ParseConfig(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse connection URL: %w", err)
		}
		connConfig.DefaultQueryExecMode = pgx.QueryExecModeExec
		db = stdlib.OpenDB(*connConfig)
	default:
		db, err = sql.Open(dialect.Driver, opts.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
	}

	if dialect.IsSQLite() {
		// pragmas are per connection, so keep exactly one alive
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		maxOpen := opts.MaxOpenConns
		if maxOpen <= 0 {
			maxOpen = 2
		}
		db.SetMaxOpenConns(maxOpen)
		db.SetConnMaxLifetime(durationOr(opts.ConnMaxLifetime, 15*time.Minute))
		db.SetConnMaxIdleTime(durationOr(opts.ConnMaxIdleTime, 3*time.Minute))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect.IsSQLite() {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
