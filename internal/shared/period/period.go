// Package period models the calendar-month pay period used by payroll and
// the dashboard. All bounds are UTC.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const Layout = "2006-01"

var pattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type Period struct {
	Year  int
	Month time.Month
}

// Parse accepts "YYYY-MM" with a month between 01 and 12.
func Parse(s string) (Period, error) {
	if !pattern.MatchString(s) {
		return Period{}, fmt.Errorf("period %q must use YYYY-MM format", s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("period %q has month out of range", s)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

// Start is 00:00:00.000 on the first day.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last representable instant of the last day.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// LastDay is the date of the final day, e.g. 29 for 2024-02.
func (p Period) LastDay() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
