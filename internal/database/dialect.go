package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// Dialect captures the per-provider differences the seeder has to care about.
type Dialect struct {
	Provider    string
	Driver      string
	Placeholder squirrel.PlaceholderFormat
	// Returning is true when INSERT ... RETURNING is available.
	Returning bool
	Isolation sql.IsolationLevel
}

var supportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

// SupportedProviders lists the provider names accepted by DialectFor.
func SupportedProviders() []string {
	out := make([]string, len(supportedProviders))
	copy(out, supportedProviders)
	return out
}

func DialectFor(provider string) (Dialect, error) {
	switch provider {
	case "postgresql", "postgres":
		return Dialect{
			Provider:    provider,
			Driver:      "pgx",
			Placeholder: squirrel.Dollar,
			Returning:   true,
			Isolation:   sql.LevelReadCommitted,
		}, nil
	case "mysql":
		return Dialect{
			Provider:    provider,
			Driver:      "mysql",
			Placeholder: squirrel.Question,
			Isolation:   sql.LevelReadCommitted,
		}, nil
	case "sqlite3":
		// mattn/go-sqlite3, requires cgo
		return Dialect{
			Provider:    provider,
			Driver:      "sqlite3",
			Placeholder: squirrel.Question,
			Returning:   true,
			Isolation:   sql.LevelDefault,
		}, nil
	case "sqlite":
		return Dialect{
			Provider:    provider,
			Driver:      "sqlite",
			Placeholder: squirrel.Question,
			Returning:   true,
			Isolation:   sql.LevelDefault,
		}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database provider: %s. Supported providers: %v", provider, supportedProviders)
	}
}

// Builder returns a squirrel statement builder using the dialect's placeholders.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

// Quote quotes a table or column name. Needed for reserved words like "user".
func (d Dialect) Quote(name string) string {
	if d.Driver == "mysql" {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return pq.QuoteIdentifier(name)
}

func (d Dialect) IsSQLite() bool {
	return d.Driver == "sqlite" || d.Driver == "sqlite3"
}
