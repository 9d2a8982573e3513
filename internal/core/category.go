// Package core holds the normalized transaction model and the fixed
// categorical domains the rest of the pipeline sorts by.
//
// Month, weekday and time-of-day values carry an explicit rank so that
// grouping output follows calendar/logical order, never lexical order.
package core

import (
	"fmt"
	"time"
)

// TimeOfDay is a fixed 3-valued ordered category.
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Night
)

var timeOfDayNames = [...]string{"Morning", "Afternoon", "Night"}

func (t TimeOfDay) String() string {
	if t < Morning || t > Night {
		return fmt.Sprintf("TimeOfDay(%d)", int(t))
	}
	return timeOfDayNames[t]
}

// ParseTimeOfDay maps a raw label onto the fixed domain. Anything outside
// {Morning, Afternoon, Night} is an error; there is no default bucket.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for i, name := range timeOfDayNames {
		if s == name {
			return TimeOfDay(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// TimesOfDay lists the domain in rank order.
func TimesOfDay() []TimeOfDay {
	return []TimeOfDay{Morning, Afternoon, Night}
}

// Weekday is a Monday-first ordered category. It deliberately does not reuse
// time.Weekday, whose week starts on Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// WeekdayOf derives the Monday-first weekday of a date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Weekdays lists the domain in rank order, Monday first.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Months lists the calendar months in rank order. time.Month already carries
// calendar rank and English full names, so it serves as the month category.
func Months() []time.Month {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}
