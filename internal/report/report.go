// Package report assembles the named aggregate bundle both renderers
// consume: headline figures, a record preview, the ranked product table,
// payment shares and the three revenue time series.
//
// Assembly is the last stop before rendering; nothing here flows back
// upstream.
package report

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"beanboard/internal/aggregate"
	"beanboard/internal/core"
	applog "beanboard/internal/log"
)

// Share is one payment method's slice of total revenue.
type Share struct {
	Label   string
	Value   float64 // units
	Percent float64
}

// Report is the fully assembled, render-ready aggregate bundle.
type Report struct {
	Title       string
	GeneratedAt time.Time

	TotalRevenue core.Money
	MeanSale     float64 // units
	Transactions int

	Preview            []core.Transaction
	TopProducts        []aggregate.Row
	PaymentShares      []Share
	MeanByHour         []aggregate.Row
	MeanDailyByWeekday []aggregate.Row
	MonthlyRevenue     []aggregate.Row

	Notes Notes
}

// Build runs every aggregate query and assembles the bundle. The queries
// share no mutable state, so they fan out concurrently; the first failure
// cancels the rest and fails the build.
func Build(ctx context.Context, records []core.Transaction, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agg := aggregate.New(records)

	r := &Report{
		Title:        cfg.Title,
		GeneratedAt:  time.Now().UTC(),
		Transactions: agg.Len(),
		Notes:        cfg.Notes,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := agg.TotalRevenue()
		if err != nil {
			return err
		}
		r.TotalRevenue = total
		return nil
	})
	g.Go(func() error {
		mean, err := agg.MeanSale()
		if err != nil {
			return err
		}
		r.MeanSale = mean
		return nil
	})
	g.Go(func() error {
		top, err := agg.TopN(aggregate.KeyCoffee, cfg.TopProducts)
		if err != nil {
			return err
		}
		r.TopProducts = top
		return nil
	})
	g.Go(func() error {
		sums, err := agg.Sum(aggregate.KeyCashType)
		if err != nil {
			return err
		}
		r.PaymentShares = shares(sums)
		return nil
	})
	g.Go(func() error {
		rows, err := agg.Mean(aggregate.KeyHour)
		if err != nil {
			return err
		}
		r.MeanByHour = rows
		return nil
	})
	g.Go(func() error {
		rows, err := agg.MeanDailyRevenueByWeekday()
		if err != nil {
			return err
		}
		r.MeanDailyByWeekday = rows
		return nil
	})
	g.Go(func() error {
		rows, err := agg.Sum(aggregate.KeyMonth)
		if err != nil {
			return err
		}
		r.MonthlyRevenue = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := cfg.PreviewRows
	if n > len(records) {
		n = len(records)
	}
	r.Preview = records[:n]

	slog.InfoContext(ctx, "Report assembled",
		applog.FieldComponent, applog.ComponentReport,
		applog.FieldOperation, applog.OpAggregate,
		applog.FieldRows, r.Transactions,
	)
	return r, nil
}

// shares converts per-method sums into percentage slices of the total.
func shares(rows []aggregate.Row) []Share {
	var total float64
	for _, row := range rows {
		total += row.Value
	}
	out := make([]Share, len(rows))
	for i, row := range rows {
		pct := 0.0
		if total > 0 {
			pct = row.Value / total * 100
		}
		out[i] = Share{Label: row.Label, Value: row.Value, Percent: pct}
	}
	return out
}
