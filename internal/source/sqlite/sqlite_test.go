package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"beanboard/internal/core"
)

func seedDB(t *testing.T, schema string, inserts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coffee.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	for _, stmt := range inserts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("insert fixture row: %v", err)
		}
	}
	return path
}

const schema = `CREATE TABLE transactions (
	Date TEXT, hour_of_day INTEGER, Time_of_Day TEXT, Weekday TEXT,
	Month_name TEXT, coffee_name TEXT, cash_type TEXT, money REAL
)`

func TestLoadFromSQLite(t *testing.T) {
	path := seedDB(t, schema,
		`INSERT INTO transactions VALUES ('01/01/2024', 8, 'Morning', 'Mon', 'Jan', 'Latte', 'card', 20)`,
		`INSERT INTO transactions VALUES ('02/01/2024', 17, 'Night', 'Tue', 'Jan', 'Cortado', 'cash', 30.5)`,
	)

	src, err := New(path, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Coffee != "Latte" || records[1].Money != 30.5 {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestLoadMissingFile(t *testing.T) {
	src, err := New(filepath.Join(t.TempDir(), "absent.db"), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := src.Load(context.Background()); !errors.Is(err, core.ErrSourceRead) {
		t.Fatalf("expected ErrSourceRead, got %v", err)
	}
}

func TestLoadMissingTable(t *testing.T) {
	path := seedDB(t, `CREATE TABLE other (x TEXT)`)
	src, err := New(path, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := src.Load(context.Background()); !errors.Is(err, core.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

// A table missing a column must fail the schema check before any row is
// read. SQLite happily evaluates a double-quoted unknown column as a string
// literal, so without the up-front check a select would return rows carrying
// the column's own name as data.
func TestLoadMissingColumn(t *testing.T) {
	path := seedDB(t, `CREATE TABLE transactions (
		Date TEXT, hour_of_day INTEGER, Time_of_Day TEXT, Weekday TEXT,
		Month_name TEXT, coffee_name TEXT, money REAL
	)`,
		`INSERT INTO transactions VALUES ('01/01/2024', 8, 'Morning', 'Mon', 'Jan', 'Latte', 20)`,
	)
	src, err := New(path, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	records, err := src.Load(context.Background())
	if !errors.Is(err, core.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records on schema mismatch, got %+v", records)
	}
}

func TestNewRejectsBadTableName(t *testing.T) {
	if _, err := New("x.db", "transactions; DROP TABLE x"); err == nil {
		t.Fatal("expected error for invalid table name")
	}
}
