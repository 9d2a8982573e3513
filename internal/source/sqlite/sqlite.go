// Package sqlite reads the transaction table from a local SQLite file.
//
// The database is opened read-only: it is an input artifact like the CSV
// file, not a persistence layer, and the pipeline never writes to it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"beanboard/internal/core"
	applog "beanboard/internal/log"
	"beanboard/internal/source"

	_ "modernc.org/sqlite"
)

// DefaultTable is the table name used when none is configured.
const DefaultTable = "transactions"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Source struct {
	path  string
	table string
}

func New(path, table string) (*Source, error) {
	if table == "" {
		table = DefaultTable
	}
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Source{path: path, table: table}, nil
}

// Load reads every row of the table ordered by rowid, preserving insert
// order the way the CSV backend preserves line order.
//
// The column set is verified against table_info before the select runs.
// SQLite would otherwise fall back to treating an unknown double-quoted
// column as a string literal, which turns a schema mismatch into rows full
// of the column's own name instead of an error.
func (s *Source) Load(ctx context.Context) ([]source.RawRecord, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", core.ErrSourceRead, s.path, err)
	}

	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrSourceRead, s.path, err)
	}
	defer db.Close()

	if err := s.checkColumns(ctx, db); err != nil {
		return nil, err
	}

	// Column identifiers are package constants matching identPattern, so
	// they are interpolated bare.
	query := fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY rowid`,
		strings.Join(source.RequiredColumns(), ", "), s.table,
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", core.ErrSourceRead, s.path, err)
	}
	defer rows.Close()

	var records []source.RawRecord
	for rows.Next() {
		var r source.RawRecord
		if err := rows.Scan(&r.Date, &r.Hour, &r.TimeOfDay, &r.Weekday,
			&r.MonthName, &r.Coffee, &r.CashType, &r.Money); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", core.ErrSourceRead, s.path, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate %s: %v", core.ErrSourceRead, s.path, err)
	}

	slog.InfoContext(ctx, "Loaded transaction rows from SQLite",
		applog.FieldComponent, applog.ComponentSource,
		applog.FieldOperation, applog.OpLoad,
		applog.FieldPath, s.path,
		"table", s.table,
		applog.FieldRows, len(records),
	)
	return records, nil
}

// checkColumns mirrors the CSV backend's header check: every required column
// must exist in the table before any row is read. Column names compare
// case-insensitively, matching SQLite's own identifier rules.
func (s *Source) checkColumns(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+s.table+")")
	if err != nil {
		return fmt.Errorf("%w: describe %s: %v", core.ErrSourceRead, s.table, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, colType    string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("%w: describe %s: %v", core.ErrSourceRead, s.table, err)
		}
		present[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: describe %s: %v", core.ErrSourceRead, s.table, err)
	}

	// table_info of a nonexistent table yields no rows rather than an error.
	if len(present) == 0 {
		return fmt.Errorf("%w: no such table %s (file %s)", core.ErrSchema, s.table, s.path)
	}
	for _, col := range source.RequiredColumns() {
		if !present[strings.ToLower(col)] {
			return fmt.Errorf("%w: %s (table %s, file %s)", core.ErrSchema, col, s.table, s.path)
		}
	}
	return nil
}
