package term

import (
	"context"
	"strings"
	"testing"

	"beanboard/internal/normalize"
	"beanboard/internal/report"
	"beanboard/internal/source"
)

func TestTableAlignment(t *testing.T) {
	out := Table(
		[]string{"coffee_name", "money"},
		[][]string{
			{"Latte", "250"},
			{"Americano with milk", "120"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Errorf("line %d width %d != header width %d:\n%s", i, len(line), width, out)
		}
	}
	if !strings.Contains(lines[0], "coffee_name") || !strings.Contains(lines[2], "Latte") {
		t.Errorf("unexpected table content:\n%s", out)
	}
}

func TestTableWideRunes(t *testing.T) {
	// The baht sign and CJK runes must not break column alignment.
	out := Table([]string{"name", "money"}, [][]string{{"拿铁", "฿100"}, {"Latte", "฿1,250"}})
	if !strings.Contains(out, "拿铁") {
		t.Fatalf("missing row content:\n%s", out)
	}
}

func TestRenderFullReport(t *testing.T) {
	records, err := normalize.Records([]source.RawRecord{
		{Date: "01/01/2024", Hour: 8, TimeOfDay: "Morning", Coffee: "Latte", CashType: "card", Money: 20},
		{Date: "01/01/2024", Hour: 17, TimeOfDay: "Night", Coffee: "Latte", CashType: "cash", Money: 30},
	})
	if err != nil {
		t.Fatalf("normalize fixture: %v", err)
	}
	rep, err := report.Build(context.Background(), records, report.DefaultConfig())
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	var sb strings.Builder
	if err := Render(&sb, rep); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Sample Coffee Shop Sales Dashboard",
		"Total Revenue: ฿250",
		"Average Sale:  ฿125",
		"Data Preview",
		"Monday",
		"Total Revenue by Coffee Type",
		"Sales Breakdown by Payment Type",
		"Average Revenue by Hour",
		"Average Revenue by Day",
		"Monthly Sales",
		"Key Insights",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q", want)
		}
	}
}
