package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"beanboard/internal/aggregate"
	"beanboard/internal/core"
	"beanboard/internal/report"
)

type (
	bar struct {
		Label  string
		Amount string
		Width  int // rounded percent of the widest bar
	}

	slice struct {
		Label   string
		Amount  string
		Percent string
	}

	line struct {
		Points string // svg polyline points
		Ticks  []tick
	}

	tick struct {
		Label string
		X     int
	}

	previewRow struct {
		Date, Hour, TimeOfDay, Day, Month, Coffee, CashType, Amount string
	}

	dashboardData struct {
		Title        string
		GeneratedAt  string
		TotalRevenue string
		MeanSale     string
		Transactions int

		Preview  []previewRow
		Products []bar
		Payments []slice
		Hourly   line
		Weekday  line
		Monthly  line

		Notes report.Notes
	}
)

// handleDashboard renders the full report page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", s.dashboardData()); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) dashboardData() dashboardData {
	rep := s.report
	data := dashboardData{
		Title:        rep.Title,
		GeneratedAt:  rep.GeneratedAt.Format("2006-01-02 15:04 UTC"),
		TotalRevenue: "฿" + rep.TotalRevenue.Format(),
		MeanSale:     "฿" + core.FormatUnits(rep.MeanSale),
		Transactions: rep.Transactions,
		Hourly:       lineChart(rep.MeanByHour),
		Weekday:      lineChart(rep.MeanDailyByWeekday),
		Monthly:      lineChart(rep.MonthlyRevenue),
		Notes:        rep.Notes,
	}

	for _, tx := range rep.Preview {
		data.Preview = append(data.Preview, previewRow{
			Date:      tx.Date.Format("2006-01-02"),
			Hour:      strconv.Itoa(tx.Hour),
			TimeOfDay: tx.TimeOfDay.String(),
			Day:       tx.DayName(),
			Month:     tx.MonthName(),
			Coffee:    tx.Coffee,
			CashType:  tx.CashType,
			Amount:    "฿" + tx.Amount.Format(),
		})
	}

	// Widest product scales to 100%; the rest get rounded percent widths.
	var max float64
	for _, row := range rep.TopProducts {
		if row.Value > max {
			max = row.Value
		}
	}
	for _, row := range rep.TopProducts {
		width := 0
		if max > 0 && row.Value > 0 {
			width = int(row.Value/max*100 + 0.5)
			if width < 2 { // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		data.Products = append(data.Products, bar{
			Label:  row.Label,
			Amount: "฿" + core.FormatUnits(row.Value),
			Width:  width,
		})
	}

	for _, share := range rep.PaymentShares {
		data.Payments = append(data.Payments, slice{
			Label:   share.Label,
			Amount:  "฿" + core.FormatUnits(share.Value),
			Percent: strconv.FormatFloat(share.Percent, 'f', 1, 64) + "%",
		})
	}

	return data
}

// Chart canvas dimensions shared with the dashboard template's viewBox.
const (
	chartWidth  = 640
	chartHeight = 220
	chartPad    = 20
)

// lineChart projects a series onto svg polyline coordinates, x spread evenly
// across the canvas in series order, y scaled from zero to the series max.
func lineChart(rows []aggregate.Row) line {
	if len(rows) == 0 {
		return line{}
	}

	var max float64
	for _, row := range rows {
		if row.Value > max {
			max = row.Value
		}
	}

	innerW := chartWidth - 2*chartPad
	innerH := chartHeight - 2*chartPad

	var points string
	ticks := make([]tick, 0, len(rows))
	for i, row := range rows {
		x := chartPad
		if len(rows) > 1 {
			x += i * innerW / (len(rows) - 1)
		}
		y := chartHeight - chartPad
		if max > 0 {
			y -= int(row.Value / max * float64(innerH))
		}
		if points != "" {
			points += " "
		}
		points += strconv.Itoa(x) + "," + strconv.Itoa(y)
		ticks = append(ticks, tick{Label: row.Label, X: x})
	}
	return line{Points: points, Ticks: ticks}
}
