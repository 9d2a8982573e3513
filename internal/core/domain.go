package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Transaction is one normalized sale. Day and Month are always derived
	// from Date during normalization, never supplied independently.
	Transaction struct {
		Date      time.Time // midnight UTC, no time component
		Hour      int       // 0-23
		TimeOfDay TimeOfDay
		Day       Weekday
		Month     time.Month
		Coffee    string // product identifier
		CashType  string // payment method
		Amount    Money
	}
)

var (
	ErrSourceRead       = errors.New("source unreadable")
	ErrSchema           = errors.New("missing column")
	ErrDateParse        = errors.New("unparsable date")
	ErrInvalidHour      = errors.New("hour out of range")
	ErrInvalidTimeOfDay = errors.New("unknown time of day")
	ErrInvalidGroupKey  = errors.New("unsupported group key")
	ErrEmptyInput       = errors.New("empty record set")
)

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	if t.Hour < 0 || t.Hour > 23 {
		return ErrInvalidHour
	}
	if t.Day != WeekdayOf(t.Date) {
		return errors.New("day inconsistent with date")
	}
	if t.Month != t.Date.Month() {
		return errors.New("month inconsistent with date")
	}
	if len(strings.TrimSpace(t.Coffee)) == 0 {
		return errors.New("empty product name")
	}
	return t.Amount.Validate()
}

// DayName returns the English weekday name derived from Date.
func (t Transaction) DayName() string {
	return t.Day.String()
}

// MonthName returns the English month name derived from Date.
func (t Transaction) MonthName() string {
	return t.Month.String()
}
