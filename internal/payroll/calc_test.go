package payroll_test

import (
	"testing"

	"go-workforce/internal/payroll"
	"go-workforce/internal/timesheet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePay(t *testing.T) {
	tests := []struct {
		name     string
		regular  string
		overtime string
		wage     string
		base     string
		otPay    string
		total    string
	}{
		{name: "regular and overtime", regular: "8", overtime: "2", wage: "20", base: "160.00", otPay: "60.00", total: "220.00"},
		{name: "no hours", regular: "0", overtime: "0", wage: "20", base: "0.00", otPay: "0.00", total: "0.00"},
		{name: "salaried", regular: "40", overtime: "5", wage: "0", base: "0.00", otPay: "0.00", total: "0.00"},
		{name: "rounds half up", regular: "1.01", overtime: "0.01", wage: "12.25", base: "12.37", otPay: "0.18", total: "12.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payroll.ComputePay(d(tt.regular), d(tt.overtime), d(tt.wage))

			assert.Equal(t, tt.base, got.BasePay.StringFixed(2))
			assert.Equal(t, tt.otPay, got.OvertimePay.StringFixed(2))
			assert.True(t, got.Deductions.IsZero())
			assert.Equal(t, tt.total, got.TotalPay.StringFixed(2))
		})
	}
}

func TestComputeEntries(t *testing.T) {
	entries := []timesheet.TimeEntry{
		{TotalHours: d("9"), OvertimeHours: d("1")},
		{TotalHours: d("7.5"), OvertimeHours: d("0")},
	}

	got := payroll.ComputeEntries(entries, d("15"))

	assert.Equal(t, "15.50", got.RegularHours.StringFixed(2))
	assert.Equal(t, "1.00", got.OvertimeHours.StringFixed(2))
	assert.Equal(t, "232.50", got.BasePay.StringFixed(2))
	assert.Equal(t, "22.50", got.OvertimePay.StringFixed(2))
	assert.Equal(t, "255.00", got.TotalPay.StringFixed(2))
}

func TestGrossPay(t *testing.T) {
	assert.True(t, d("220").Equal(payroll.GrossPay(d("8"), d("2"), d("20"))))
	assert.True(t, d("0.1055").Equal(payroll.GrossPay(d("0.01"), d("0"), d("10.55"))))
	assert.True(t, d("0.16875").Equal(payroll.GrossPay(d("0"), d("0.01"), d("11.25"))))
}
