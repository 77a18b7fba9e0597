// Package testhelpers provides sqlite databases with the dashboard schema for
// tests.
package testhelpers

import (
	"context"
	"database/sql"
	"embed"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/saherflow/dashseed/internal/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewTestDB opens a file backed sqlite database in t.TempDir() and applies
// the schema. It is closed when the test ends.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, _ := NewTestDBFile(t)
	return db
}

// NewTestDBFile is NewTestDB that also returns the database path, for tests
// that open a second handle the way the CLI does.
func NewTestDBFile(t *testing.T) (*database.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dashseed.db")
	db, err := database.Open(context.Background(), database.Options{Provider: "sqlite", URL: path})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	return db, path
}

func insertID(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()
	var id int64
	if err := db.QueryRow(query+" RETURNING id", args...).Scan(&id); err != nil {
		t.Fatalf("fixture %q: %v", query, err)
	}
	return id
}

func CreateUser(t *testing.T, db *database.DB, email string) int64 {
	t.Helper()
	return insertID(t, db.DB, `INSERT INTO "user" (email) VALUES (?)`, email)
}

func CreateDeviceType(t *testing.T, db *database.DB, name string) int64 {
	t.Helper()
	return insertID(t, db.DB, `INSERT INTO device_type (type_name) VALUES (?)`, name)
}

func CreateMapping(t *testing.T, db *database.DB, deviceTypeID int64, tag, variableName, unit string) int64 {
	t.Helper()
	var u any
	if unit != "" {
		u = unit
	}
	return insertID(t, db.DB,
		`INSERT INTO device_data_mapping (device_type_id, variable_name, variable_tag, unit) VALUES (?, ?, ?, ?)`,
		deviceTypeID, variableName, tag, u)
}

// Fixture is the precondition data of a typical MPFM installation.
type Fixture struct {
	AdminID      int64
	DeviceTypeID int64
	MappingIDs   map[string]int64
}

// SeedPreconditions creates the admin user, the MPFM device type and a
// mapping for every tag in tags.
func SeedPreconditions(t *testing.T, db *database.DB, tags ...string) Fixture {
	t.Helper()
	f := Fixture{
		AdminID:      CreateUser(t, db, "admin@saherflow.com"),
		DeviceTypeID: CreateDeviceType(t, db, "MPFM"),
		MappingIDs:   make(map[string]int64),
	}
	units := map[string]string{"OFR": "l/min", "WFR": "l/min", "GFR": "l/min", "GVF": "%", "WLR": "%"}
	for _, tag := range tags {
		f.MappingIDs[tag] = CreateMapping(t, db, f.DeviceTypeID, tag, tag+"_value", units[tag])
	}
	return f
}

func CountRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
