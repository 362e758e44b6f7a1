package payroll

import (
	"go-workforce/internal/timesheet"

	"github.com/shopspring/decimal"
)

// OvertimeMultiplier is applied to the hourly wage for overtime hours.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

type Breakdown struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	BasePay       decimal.Decimal
	OvertimePay   decimal.Decimal
	Deductions    decimal.Decimal
	TotalPay      decimal.Decimal
}

// SumHours adds up regular and overtime hours across entries.
func SumHours(entries []timesheet.TimeEntry) (regular, overtime decimal.Decimal) {
	regular, overtime = decimal.Zero, decimal.Zero
	for _, e := range entries {
		regular = regular.Add(timesheet.RegularHours(e))
		overtime = overtime.Add(e.OvertimeHours)
	}
	return regular, overtime
}

// GrossPay is regular×wage + overtime×wage×1.5, unrounded.
func GrossPay(regularHours, overtimeHours, wage decimal.Decimal) decimal.Decimal {
	return regularHours.Mul(wage).Add(overtimeHours.Mul(wage).Mul(OvertimeMultiplier))
}

// ComputePay rounds each amount half-up to cents on its own. Deductions are
// always zero.
func ComputePay(regularHours, overtimeHours, wage decimal.Decimal) Breakdown {
	base := regularHours.Mul(wage)
	overtime := overtimeHours.Mul(wage).Mul(OvertimeMultiplier)
	deductions := decimal.Zero
	total := base.Add(overtime).Sub(deductions)

	return Breakdown{
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		BasePay:       base.Round(2),
		OvertimePay:   overtime.Round(2),
		Deductions:    deductions,
		TotalPay:      total.Round(2),
	}
}

// ComputeEntries is ComputePay over the summed hours of entries.
func ComputeEntries(entries []timesheet.TimeEntry, wage decimal.Decimal) Breakdown {
	regular, overtime := SumHours(entries)
	return ComputePay(regular, overtime, wage)
}
