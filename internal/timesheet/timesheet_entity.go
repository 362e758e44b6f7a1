package timesheet

import (
	"time"

	"go-workforce/internal/approval"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeEntry is one clock-in/clock-out session. An entry with a nil ClockOut
// is open; the partial unique index keeps at most one open entry per employee.
type TimeEntry struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index:idx_time_entries_employee_date,priority:1;uniqueIndex:uq_time_entries_open_session,where:clock_out IS NULL"`
	Date          time.Time       `gorm:"column:date;type:date;not null;index:idx_time_entries_employee_date,priority:2"`
	ClockIn       *time.Time      `gorm:"column:clock_in;type:timestamptz"`
	ClockOut      *time.Time      `gorm:"column:clock_out;type:timestamptz"`
	TotalHours    decimal.Decimal `gorm:"column:total_hours;type:numeric(8,2);not null;default:0"`
	OvertimeHours decimal.Decimal `gorm:"column:overtime_hours;type:numeric(8,2);not null;default:0"`
	Status        string          `gorm:"column:status;type:varchar(20);not null;default:pending;index:idx_time_entries_status"`
	Location      *string         `gorm:"column:location;type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	Employee      *EmployeeRef    `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// EmployeeRef is the read-only view of an employee the ledger needs.
type EmployeeRef struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"column:name"`
	Role      string     `gorm:"column:role"`
	ManagerID *uuid.UUID `gorm:"column:manager_id;type:uuid"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (r EmployeeRef) Party() approval.Party {
	return approval.Party{ID: r.ID, Role: r.Role, ManagerID: r.ManagerID}
}
