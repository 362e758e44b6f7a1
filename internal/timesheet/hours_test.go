package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWorkedHours(t *testing.T) {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		elapsed  time.Duration
		total    string
		overtime string
	}{
		{"exactly eight hours", 8 * time.Hour, "8", "0"},
		{"just over eight", 8*time.Hour + 36*time.Second, "8.01", "0.01"},
		{"ten hours", 10 * time.Hour, "10", "2"},
		{"half hour", 30 * time.Minute, "0.5", "0"},
		{"rounds half up", 18 * time.Second, "0.01", "0"},
		{"rounds down below half", 17 * time.Second, "0", "0"},
		{"clock skew", -time.Minute, "0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, overtime := WorkedHours(start, start.Add(tc.elapsed))
			assert.True(t, decimal.RequireFromString(tc.total).Equal(total), "total %s", total)
			assert.True(t, decimal.RequireFromString(tc.overtime).Equal(overtime), "overtime %s", overtime)
			assert.True(t, overtime.LessThanOrEqual(total))
		})
	}
}

func TestRegularHours(t *testing.T) {
	e := TimeEntry{
		TotalHours:    decimal.RequireFromString("10"),
		OvertimeHours: decimal.RequireFromString("2"),
	}
	assert.True(t, decimal.NewFromInt(8).Equal(RegularHours(e)))
}
