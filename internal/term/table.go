// Package term renders the assembled report as aligned text for the
// one-shot report binary.
package term

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"beanboard/internal/aggregate"
	"beanboard/internal/core"
	"beanboard/internal/report"
)

// Table renders a pipe-separated table with columns padded to the display
// width of their widest cell, so multi-byte product names stay aligned.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(" ")
			sb.WriteString(cell)
			if pad := width - runewidth.StringWidth(cell); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sb.WriteString("|")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

// Render writes the whole report to w: headline figures, notes, the record
// preview and one table per aggregate series.
func Render(w io.Writer, r *report.Report) error {
	var sb strings.Builder

	sb.WriteString("# " + r.Title + "\n\n")
	for _, n := range r.Notes.Intro {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")
	sb.WriteString("Total Revenue: ฿" + r.TotalRevenue.Format() + "\n")
	sb.WriteString("Average Sale:  ฿" + core.FormatUnits(r.MeanSale) + "\n")
	sb.WriteString("Transactions:  " + strconv.Itoa(r.Transactions) + "\n\n")

	sb.WriteString("## Data Preview\n")
	previewRows := make([][]string, 0, len(r.Preview))
	for _, tx := range r.Preview {
		previewRows = append(previewRows, []string{
			tx.Date.Format("2006-01-02"),
			strconv.Itoa(tx.Hour),
			tx.TimeOfDay.String(),
			tx.DayName(),
			tx.MonthName(),
			tx.Coffee,
			tx.CashType,
			"฿" + tx.Amount.Format(),
		})
	}
	sb.WriteString(Table(
		[]string{"date", "hour", "time_of_day", "day_name", "month_name", "coffee_name", "cash_type", "money"},
		previewRows,
	))
	for _, n := range r.Notes.Preview {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")

	sb.WriteString("## Total Revenue by Coffee Type\n")
	sb.WriteString(rowTable("coffee_name", r.TopProducts))
	for _, n := range r.Notes.Products {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")

	sb.WriteString("## Sales Breakdown by Payment Type\n")
	shareRows := make([][]string, 0, len(r.PaymentShares))
	for _, s := range r.PaymentShares {
		shareRows = append(shareRows, []string{
			s.Label, "฿" + core.FormatUnits(s.Value), fmt.Sprintf("%.1f%%", s.Percent),
		})
	}
	sb.WriteString(Table([]string{"cash_type", "revenue", "share"}, shareRows))
	for _, n := range r.Notes.Payments {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")

	sb.WriteString("## Average Revenue by Hour\n")
	sb.WriteString(rowTable("hour", r.MeanByHour))
	for _, n := range r.Notes.Hourly {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")

	sb.WriteString("## Average Revenue by Day\n")
	sb.WriteString(rowTable("day_name", r.MeanDailyByWeekday))
	for _, n := range r.Notes.Weekday {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")

	sb.WriteString("## Monthly Sales\n")
	sb.WriteString(rowTable("month_name", r.MonthlyRevenue))
	for _, n := range r.Notes.Monthly {
		sb.WriteString(note(n))
	}
	sb.WriteString("\n")

	sb.WriteString("## Key Insights\n")
	for _, n := range r.Notes.Insights {
		sb.WriteString(note(n))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func rowTable(label string, rows []aggregate.Row) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Label, "฿" + core.FormatUnits(row.Value)})
	}
	return Table([]string{label, "money"}, cells)
}

func note(n report.Note) string {
	marker := "ℹ️ "
	switch n.Kind {
	case "success":
		marker = "✅ "
	case "warning":
		marker = "⚠️ "
	}
	return marker + n.Text + "\n"
}
