// Package csvfile reads the transaction table from a delimited text file.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"beanboard/internal/core"
	applog "beanboard/internal/log"
	"beanboard/internal/source"
)

type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

// Load reads every row of the CSV file in input order. A missing or
// unreadable file, a missing required column, or an unconvertible numeric
// field aborts the whole load; there is no partial result.
func (s *Source) Load(ctx context.Context) ([]source.RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrSourceRead, s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ','

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", core.ErrSourceRead, s.path, err)
	}
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[col] = i
	}
	for _, col := range source.RequiredColumns() {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("%w: %s (file %s)", core.ErrSchema, col, s.path)
		}
	}

	var records []source.RawRecord
	for line := 2; ; line++ {
		row, readErr := reader.Read()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %s line %d: %v", core.ErrSourceRead, s.path, line, readErr)
		}

		hour, convErr := strconv.Atoi(row[colIndex[source.ColHour]])
		if convErr != nil {
			return nil, fmt.Errorf("%w: %s line %d: hour_of_day %q", core.ErrSourceRead, s.path, line, row[colIndex[source.ColHour]])
		}
		money, convErr := strconv.ParseFloat(row[colIndex[source.ColMoney]], 64)
		if convErr != nil {
			return nil, fmt.Errorf("%w: %s line %d: money %q", core.ErrSourceRead, s.path, line, row[colIndex[source.ColMoney]])
		}

		records = append(records, source.RawRecord{
			Date:      row[colIndex[source.ColDate]],
			Hour:      hour,
			TimeOfDay: row[colIndex[source.ColTimeOfDay]],
			Weekday:   row[colIndex[source.ColWeekday]],
			MonthName: row[colIndex[source.ColMonthName]],
			Coffee:    row[colIndex[source.ColCoffee]],
			CashType:  row[colIndex[source.ColCashType]],
			Money:     money,
		})
	}

	slog.InfoContext(ctx, "Loaded transaction rows from CSV",
		applog.FieldComponent, applog.ComponentSource,
		applog.FieldOperation, applog.OpLoad,
		applog.FieldPath, s.path,
		applog.FieldRows, len(records),
	)
	return records, nil
}
