package core

import (
	"testing"
	"time"
)

func validTransaction() Transaction {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	return Transaction{
		Date:      date,
		Hour:      9,
		TimeOfDay: Morning,
		Day:       WeekdayOf(date),
		Month:     date.Month(),
		Coffee:    "Latte",
		CashType:  "card",
		Amount:    Money{Cents: 10000},
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }},
		{"hour too high", func(tx *Transaction) { tx.Hour = 24 }},
		{"negative hour", func(tx *Transaction) { tx.Hour = -1 }},
		{"day inconsistent", func(tx *Transaction) { tx.Day = Sunday }},
		{"month inconsistent", func(tx *Transaction) { tx.Month = time.July }},
		{"empty product", func(tx *Transaction) { tx.Coffee = "  " }},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Cents: -1000} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(&tx)
			if err := tx.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDerivedNames(t *testing.T) {
	tx := validTransaction() // 2024-03-05 was a Tuesday
	if tx.DayName() != "Tuesday" {
		t.Errorf("DayName = %q, want Tuesday", tx.DayName())
	}
	if tx.MonthName() != "March" {
		t.Errorf("MonthName = %q, want March", tx.MonthName())
	}
}
