// Package source loads raw transaction rows from a tabular backend.
//
// Backends return rows in input order and do no normalization beyond the
// numeric conversions needed to fill RawRecord; everything else is the
// normalizer's job.
package source

import "context"

// RawRecord is one unnormalized row of the transaction table. The Weekday
// and MonthName columns are carried through and discarded downstream in
// favour of values derived from the parsed date.
type RawRecord struct {
	Date      string
	Hour      int
	TimeOfDay string
	Weekday   string
	MonthName string
	Coffee    string
	CashType  string
	Money     float64
}

// Column names every backend must provide.
const (
	ColDate      = "Date"
	ColHour      = "hour_of_day"
	ColTimeOfDay = "Time_of_Day"
	ColWeekday   = "Weekday"
	ColMonthName = "Month_name"
	ColCoffee    = "coffee_name"
	ColCashType  = "cash_type"
	ColMoney     = "money"
)

// RequiredColumns in canonical order.
func RequiredColumns() []string {
	return []string{
		ColDate, ColHour, ColTimeOfDay, ColWeekday,
		ColMonthName, ColCoffee, ColCashType, ColMoney,
	}
}

// Loader is the port the pipeline reads from.
type Loader interface {
	Load(ctx context.Context) ([]RawRecord, error)
}
