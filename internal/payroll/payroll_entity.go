package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const StatusProcessed = "processed"

// PayrollRecord is the immutable snapshot of one employee's pay for one period.
type PayrollRecord struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	Period      string          `gorm:"column:period;type:char(7);not null;uniqueIndex:uq_payroll_employee_period,priority:2;index:idx_payroll_period"`
	BasePay     decimal.Decimal `gorm:"column:base_pay;type:numeric(12,2);not null;default:0"`
	OvertimePay decimal.Decimal `gorm:"column:overtime_pay;type:numeric(12,2);not null;default:0"`
	Deductions  decimal.Decimal `gorm:"column:deductions;type:numeric(12,2);not null;default:0"`
	TotalPay    decimal.Decimal `gorm:"column:total_pay;type:numeric(12,2);not null;default:0"`
	Status      string          `gorm:"column:status;type:varchar(20);not null;default:processed"`
	CreatedAt   time.Time       `gorm:"column:created_at;index:idx_payroll_created_at"`
	Employee    *EmployeeRef    `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

type EmployeeRef struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"column:name"`
	HourlyWage decimal.Decimal `gorm:"column:hourly_wage"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
