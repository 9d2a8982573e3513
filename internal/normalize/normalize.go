// Package normalize turns raw transaction rows into canonical Transactions.
//
// The pass is pure and deterministic: every row gets the same fixed
// transforms, and a single malformed row fails the whole pass. Skipping bad
// rows would silently change every downstream aggregate, so there is no
// degraded mode.
package normalize

import (
	"fmt"
	"time"

	"beanboard/internal/core"
	"beanboard/internal/source"
)

// DateLayout is the fixed day/month/year format of the input date column.
const DateLayout = "02/01/2006"

// Records normalizes every raw row:
//
//  1. rescales the monetary field (core.Rescale),
//  2. parses the date with the fixed day/month/year layout,
//  3. derives weekday and month from the parsed date, superseding the raw
//     Weekday and Month_name columns, which are dropped here,
//  4. renames hour_of_day to Hour, and
//  5. tags time-of-day with its fixed ordered domain.
//
// The input slice is not mutated.
func Records(raw []source.RawRecord) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0, len(raw))
	for i, r := range raw {
		date, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q", core.ErrDateParse, i, r.Date)
		}
		if r.Hour < 0 || r.Hour > 23 {
			return nil, fmt.Errorf("%w: row %d: %d", core.ErrInvalidHour, i, r.Hour)
		}
		tod, err := core.ParseTimeOfDay(r.TimeOfDay)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		out = append(out, core.Transaction{
			Date:      date,
			Hour:      r.Hour,
			TimeOfDay: tod,
			Day:       core.WeekdayOf(date),
			Month:     date.Month(),
			Coffee:    r.Coffee,
			CashType:  r.CashType,
			Amount:    core.Rescale(r.Money),
		})
	}
	return out, nil
}
