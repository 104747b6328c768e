// pkg/strength/cracktime.go

package strength

import (
	"fmt"
	"math"
)

// DefaultAttackRate is the reference brute-force rate in guesses per second
// ("dedicated hardware" tier). It is an uncalibrated heuristic, kept as a
// constant so callers can substitute their own threat model.
const DefaultAttackRate = 1e9

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 365 * secondsPerDay
)

// universeAgeYears is the cutoff beyond which a numeric estimate stops being
// meaningful to anyone.
const universeAgeYears = 1e12

// CrackTime estimates the average brute-force duration for a password with
// the given adjusted entropy, at attackRate guesses per second, and formats
// it as a human-readable magnitude. Average case: half the keyspace.
func CrackTime(entropyBits, attackRate float64) string {
	if attackRate <= 0 {
		attackRate = DefaultAttackRate
	}
	combinations := math.Exp2(entropyBits)
	seconds := combinations / (2 * attackRate)
	return formatSeconds(seconds)
}

func formatSeconds(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < secondsPerMinute:
		return pluralize(math.Floor(seconds), "second")
	case seconds < secondsPerHour:
		return pluralize(math.Floor(seconds/secondsPerMinute), "minute")
	case seconds < secondsPerDay:
		return pluralize(math.Floor(seconds/secondsPerHour), "hour")
	case seconds < secondsPerYear:
		return pluralize(math.Floor(seconds/secondsPerDay), "day")
	}

	years := seconds / secondsPerYear
	switch {
	case years < 1e6:
		return pluralize(math.Floor(years), "year")
	case years < universeAgeYears:
		return fmt.Sprintf("%.0f million years", math.Floor(years/1e6))
	default:
		return "longer than the age of the universe"
	}
}

func pluralize(n float64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%.0f %ss", n, unit)
}
