package core

import "testing"

func TestRescale(t *testing.T) {
	cases := []struct {
		in    float64
		units int64
	}{
		{20, 100},
		{30, 150},
		{0, 0},
		{1, 0},     // 5 -> even 0
		{3, 20},    // 15 -> even 20
		{5, 20},    // 25 -> even 20
		{7, 40},    // 35 -> even 40
		{38.7, 190}, // 193.5 -> 190
		{2.2, 10},  // 11 -> 10
		{1.8, 10},  // 9 -> 10
		{35.76, 180},
	}
	for _, tc := range cases {
		got := Rescale(tc.in)
		if got.Cents != tc.units*100 {
			t.Errorf("Rescale(%v) = %d cents, want %d units", tc.in, got.Cents, tc.units)
		}
	}
}

func TestRescaleAlwaysMultipleOfTen(t *testing.T) {
	for raw := 0.0; raw < 50; raw += 0.37 {
		m := Rescale(raw)
		if m.Cents%1000 != 0 {
			t.Fatalf("Rescale(%v) = %d cents, not a multiple of ten units", raw, m.Cents)
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("Rescale(%v) invalid: %v", raw, err)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		cents int64
		out   string
	}{
		{0, "0"},
		{100, "1"},
		{123400, "1,234"},
		{123456700, "1,234,567"},
		{-500000, "-5,000"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Format(); got != tc.out {
			t.Errorf("Format(%d) = %q, want %q", tc.cents, got, tc.out)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{125.4, "125"},
		{125.5, "126"},
		{1234.9, "1,235"},
		{1234567, "1,234,567"},
		{-5000.2, "-5,000"},
	}
	for _, tc := range cases {
		if got := FormatUnits(tc.in); got != tc.out {
			t.Errorf("FormatUnits(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: -1000}).Validate(); err == nil {
		t.Error("expected error for negative amount")
	}
	if err := (Money{Cents: 1234}).Validate(); err == nil {
		t.Error("expected error for non-multiple of ten units")
	}
	if err := (Money{Cents: 5000}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
