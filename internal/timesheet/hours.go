package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegularHoursPerDay is the per-entry threshold above which hours count as overtime.
var RegularHoursPerDay = decimal.NewFromInt(8)

var msPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// WorkedHours returns total and overtime hours for one session, both rounded
// half-up to two decimals. Overtime is whatever the rounded total exceeds
// RegularHoursPerDay by.
func WorkedHours(clockIn, clockOut time.Time) (total, overtime decimal.Decimal) {
	elapsed := clockOut.Sub(clockIn).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	total = decimal.NewFromInt(elapsed).Div(msPerHour).Round(2)
	overtime = decimal.Max(decimal.Zero, total.Sub(RegularHoursPerDay))
	return total, overtime
}

// RegularHours is total minus overtime.
func RegularHours(e TimeEntry) decimal.Decimal {
	return e.TotalHours.Sub(e.OvertimeHours)
}
