// Package metrics computes the derived fields of running and cycling entries.
package metrics

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minutesPerHour = 60

// parsePositive parses a user-entered number and reports whether it is a
// positive finite value. The whole trimmed string must be numeric, so input
// with a unit suffix such as "5km" is rejected rather than read as 5.
func parsePositive(s string) (decimal.Decimal, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// Pace returns duration/distance in minutes per unit distance, rounded to two
// decimals. ok is false when either input is not a positive number.
func Pace(distance, duration string) (string, bool) {
	d, ok := parsePositive(distance)
	if !ok {
		return "", false
	}
	t, ok := parsePositive(duration)
	if !ok {
		return "", false
	}
	return t.Div(d).StringFixed(2), true
}

// AvgSpeed returns distance per hour given a duration in minutes, rounded to
// two decimals. ok is false when either input is not a positive number.
func AvgSpeed(distance, duration string) (string, bool) {
	d, ok := parsePositive(distance)
	if !ok {
		return "", false
	}
	t, ok := parsePositive(duration)
	if !ok {
		return "", false
	}
	// multiply first: t/60 is often a repeating decimal and would be
	// truncated before the final rounding
	return d.Mul(decimal.NewFromInt(minutesPerHour)).Div(t).StringFixed(2), true
}
