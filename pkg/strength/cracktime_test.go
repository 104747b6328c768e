// pkg/strength/cracktime_test.go

package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSecondsBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "sub-second", seconds: 0.4, want: "less than a second"},
		{name: "one second", seconds: 1, want: "1 second"},
		{name: "last second value", seconds: 59, want: "59 seconds"},
		{name: "fraction below a minute", seconds: 59.9, want: "59 seconds"},
		{name: "first minute value", seconds: 60, want: "1 minute"},
		{name: "last minute value", seconds: 3599, want: "59 minutes"},
		{name: "first hour value", seconds: 3600, want: "1 hour"},
		{name: "last hour value", seconds: 86399, want: "23 hours"},
		{name: "first day value", seconds: 86400, want: "1 day"},
		{name: "last day value", seconds: 31535999, want: "364 days"},
		{name: "first year value", seconds: 31536000, want: "1 year"},
		{name: "large year count", seconds: 31536000 * 999999, want: "999999 years"},
		{name: "million years", seconds: 31536000 * 1e6, want: "1 million years"},
		{name: "many million years", seconds: 31536000 * 2.5e8, want: "250 million years"},
		{name: "beyond the universe", seconds: 31536000 * 1e12, want: "longer than the age of the universe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSeconds(tt.seconds))
		})
	}
}

func TestCrackTime(t *testing.T) {
	// 2^0 / (2 * 1e9) is half a nanosecond.
	assert.Equal(t, "less than a second", CrackTime(0, DefaultAttackRate))

	// 2^200 dwarfs any attack rate.
	assert.Equal(t, "longer than the age of the universe", CrackTime(200, DefaultAttackRate))

	// A slower attacker takes longer: same entropy, rate cut by 60 moves
	// the estimate from seconds into minutes territory.
	fast := CrackTime(40, 1e9)
	slow := CrackTime(40, 1e9/60)
	assert.NotEqual(t, fast, slow)
}

func TestCrackTimeInvalidRateFallsBack(t *testing.T) {
	assert.Equal(t, CrackTime(50, DefaultAttackRate), CrackTime(50, 0))
	assert.Equal(t, CrackTime(50, DefaultAttackRate), CrackTime(50, -3))
}
