package core

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in integer cents, which keeps aggregation exact. The
// raw monetary field of the input is rescaled once during normalization and
// never touched again.
type Money struct {
	Cents int64
}

// rescaleFactor is the fixed currency-conversion multiplier applied to the
// raw monetary field. Together with the round-to-tens denomination step it is
// a pipeline constant, not configuration.
const rescaleFactor = 5

// Rescale converts a raw monetary value into normalized Money:
// the raw amount times rescaleFactor, rounded to the nearest multiple of ten
// currency units with ties going to the even tens digit.
//
// The arithmetic runs on integer cents so that ties are exact:
//   Rescale(20) = 100 units, Rescale(30) = 150 units,
//   Rescale(1)  = 0 units  (5 rounds to the even 0),
//   Rescale(3)  = 20 units (15 rounds to the even 2 tens).
func Rescale(raw float64) Money {
	// Cents of the scaled amount; math.Round here only strips float noise,
	// raw inputs carry at most a few decimal places.
	scaled := int64(math.Round(raw * rescaleFactor * 100))
	tens := scaled / 1000
	rem := scaled % 1000
	switch {
	case rem > 500:
		tens++
	case rem == 500 && tens%2 != 0:
		tens++
	}
	return Money{Cents: tens * 1000}
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return fmt.Errorf("negative amount: %d cents", m.Cents)
	}
	if m.Cents%1000 != 0 {
		return fmt.Errorf("amount %d cents is not a multiple of ten units", m.Cents)
	}
	return nil
}

// Units returns the whole-currency value as a float64 for display and
// statistics. Keep calculations on Cents where exactness matters.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// Format renders a whole-unit amount with thousands separators, e.g. "12,340".
func (m Money) Format() string {
	units := m.Cents / 100
	neg := units < 0
	if neg {
		units = -units
	}
	s := strconv.FormatInt(units, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatUnits renders a fractional unit amount rounded to the nearest whole
// unit, with the same thousands grouping as Format. Derived figures such as
// means pass through here so every surface prints amounts the same way.
func FormatUnits(v float64) string {
	return Money{Cents: int64(math.Round(v)) * 100}.Format()
}
