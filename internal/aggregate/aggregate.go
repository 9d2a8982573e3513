// Package aggregate computes named summary statistics over the normalized
// record set. Every query is a pure function of (records, query); nothing is
// cached between calls and the record set is never mutated.
package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"beanboard/internal/core"
)

// Stat is a supported statistic kind.
type Stat string

const (
	StatSum   Stat = "sum"
	StatMean  Stat = "mean"
	StatCount Stat = "count"
	StatTopN  Stat = "top_n"
)

// Key is a supported grouping dimension.
type Key string

const (
	KeyDate      Key = "date"
	KeyMonth     Key = "month_name"
	KeyHour      Key = "hour"
	KeyTimeOfDay Key = "time_of_day"
	KeyDay       Key = "day_name"
	KeyCoffee    Key = "coffee_name"
	KeyCashType  Key = "cash_type"
)

// Query names one statistic over one grouping key. N applies to StatTopN only.
type Query struct {
	Stat Stat
	Key  Key
	N    int
}

// Row is one (group label, value) pair. Values are whole currency units for
// money statistics and a plain count for StatCount.
type Row struct {
	Label string
	Value float64
}

// Aggregator answers queries over an immutable normalized record set.
// It holds no other state, so queries may run concurrently.
type Aggregator struct {
	records []core.Transaction
}

func New(records []core.Transaction) *Aggregator {
	return &Aggregator{records: records}
}

// Len returns the number of records in the set.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Run executes a generic query. Ordered categorical keys come back in their
// fixed domain order, date and hour ascend, and free-text keys keep first-seen
// input order; StatTopN instead orders strictly by descending summed value.
func (a *Aggregator) Run(q Query) ([]Row, error) {
	switch q.Stat {
	case StatSum:
		return a.Sum(q.Key)
	case StatMean:
		return a.Mean(q.Key)
	case StatCount:
		return a.Count(q.Key)
	case StatTopN:
		return a.TopN(q.Key, q.N)
	default:
		return nil, fmt.Errorf("unsupported statistic %q", q.Stat)
	}
}

// Sum returns summed revenue per group.
func (a *Aggregator) Sum(key Key) ([]Row, error) {
	groups, err := a.groupBy(key)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(groups))
	for i, g := range groups {
		rows[i] = Row{Label: g.label, Value: core.Money{Cents: g.cents}.Units()}
	}
	return rows, nil
}

// Mean returns mean revenue per transaction, per group.
func (a *Aggregator) Mean(key Key) ([]Row, error) {
	groups, err := a.groupBy(key)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(groups))
	for i, g := range groups {
		mean, err := stats.Mean(g.units)
		if err != nil {
			return nil, fmt.Errorf("mean of group %q: %w", g.label, err)
		}
		rows[i] = Row{Label: g.label, Value: mean}
	}
	return rows, nil
}

// Count returns the number of transactions per group.
func (a *Aggregator) Count(key Key) ([]Row, error) {
	groups, err := a.groupBy(key)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(groups))
	for i, g := range groups {
		rows[i] = Row{Label: g.label, Value: float64(len(g.units))}
	}
	return rows, nil
}

// TopN returns the n groups with the highest summed revenue, strictly
// non-increasing by value, ties kept in first-seen order.
func (a *Aggregator) TopN(key Key, n int) ([]Row, error) {
	if n < 1 {
		return nil, fmt.Errorf("top_n: n must be positive, got %d", n)
	}
	groups, err := a.groupBy(key)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].cents != groups[j].cents {
			return groups[i].cents > groups[j].cents
		}
		return groups[i].seen < groups[j].seen
	})
	if n > len(groups) {
		n = len(groups)
	}
	rows := make([]Row, n)
	for i, g := range groups[:n] {
		rows[i] = Row{Label: g.label, Value: core.Money{Cents: g.cents}.Units()}
	}
	return rows, nil
}

// TotalRevenue sums the whole record set.
func (a *Aggregator) TotalRevenue() (core.Money, error) {
	if len(a.records) == 0 {
		return core.Money{}, core.ErrEmptyInput
	}
	var cents int64
	for _, tx := range a.records {
		cents += tx.Amount.Cents
	}
	return core.Money{Cents: cents}, nil
}

// MeanSale is the mean transaction value over the whole set, in units.
func (a *Aggregator) MeanSale() (float64, error) {
	if len(a.records) == 0 {
		return 0, core.ErrEmptyInput
	}
	units := make([]float64, len(a.records))
	for i, tx := range a.records {
		units[i] = tx.Amount.Units()
	}
	return stats.Mean(units)
}

// MeanDailyRevenueByWeekday computes per-calendar-date totals first and then
// averages those daily totals within each weekday bucket, Monday first.
//
// This is not the flat per-weekday sum: four Mondays of 100 each yield a
// Monday value of 100 here, not 400.
func (a *Aggregator) MeanDailyRevenueByWeekday() ([]Row, error) {
	if len(a.records) == 0 {
		return nil, core.ErrEmptyInput
	}

	type dayTotal struct {
		weekday core.Weekday
		cents   int64
	}
	totals := make(map[int64]*dayTotal) // keyed by date unix
	for _, tx := range a.records {
		key := tx.Date.Unix()
		if _, ok := totals[key]; !ok {
			totals[key] = &dayTotal{weekday: tx.Day}
		}
		totals[key].cents += tx.Amount.Cents
	}

	buckets := make([][]float64, 7)
	for _, dt := range totals {
		buckets[dt.weekday] = append(buckets[dt.weekday], core.Money{Cents: dt.cents}.Units())
	}

	var rows []Row
	for _, day := range core.Weekdays() {
		if len(buckets[day]) == 0 {
			continue
		}
		mean, err := stats.Mean(buckets[day])
		if err != nil {
			return nil, fmt.Errorf("mean daily revenue for %s: %w", day, err)
		}
		rows = append(rows, Row{Label: day.String(), Value: mean})
	}
	return rows, nil
}

type group struct {
	label string
	rank  int64 // domain rank for ordered keys
	seen  int   // first-seen record index, tie-breaker and free-text order
	cents int64
	units []float64
}

// groupBy buckets the record set by key. Ordered keys sort by domain rank,
// free-text keys by first appearance.
func (a *Aggregator) groupBy(key Key) ([]*group, error) {
	labelOf, err := labelFunc(key)
	if err != nil {
		return nil, err
	}
	if len(a.records) == 0 {
		return nil, core.ErrEmptyInput
	}

	index := make(map[string]*group)
	var groups []*group
	for i, tx := range a.records {
		label, rank := labelOf(tx)
		g, ok := index[label]
		if !ok {
			g = &group{label: label, rank: rank, seen: i}
			index[label] = g
			groups = append(groups, g)
		}
		g.cents += tx.Amount.Cents
		g.units = append(g.units, tx.Amount.Units())
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].rank != groups[j].rank {
			return groups[i].rank < groups[j].rank
		}
		return groups[i].seen < groups[j].seen
	})
	return groups, nil
}

// labelFunc maps a key to its label and ordering rank. Free-text keys get a
// constant rank so first-seen order decides.
func labelFunc(key Key) (func(core.Transaction) (string, int64), error) {
	switch key {
	case KeyDate:
		return func(tx core.Transaction) (string, int64) {
			return tx.Date.Format("2006-01-02"), tx.Date.Unix()
		}, nil
	case KeyMonth:
		return func(tx core.Transaction) (string, int64) {
			return tx.MonthName(), int64(tx.Month)
		}, nil
	case KeyHour:
		return func(tx core.Transaction) (string, int64) {
			return strconv.Itoa(tx.Hour), int64(tx.Hour)
		}, nil
	case KeyTimeOfDay:
		return func(tx core.Transaction) (string, int64) {
			return tx.TimeOfDay.String(), int64(tx.TimeOfDay)
		}, nil
	case KeyDay:
		return func(tx core.Transaction) (string, int64) {
			return tx.DayName(), int64(tx.Day)
		}, nil
	case KeyCoffee:
		return func(tx core.Transaction) (string, int64) {
			return tx.Coffee, 0
		}, nil
	case KeyCashType:
		return func(tx core.Transaction) (string, int64) {
			return tx.CashType, 0
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidGroupKey, key)
	}
}
