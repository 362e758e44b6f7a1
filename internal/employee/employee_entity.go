package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string          `gorm:"type:varchar(150);not null"`
	Email        string          `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	PasswordHash string          `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string          `gorm:"type:varchar(20);not null;default:'employee';index:idx_employees_role"`
	HourlyWage   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ManagerID    *uuid.UUID      `gorm:"type:uuid;index:idx_employees_manager"`
	CreatedAt    time.Time       `gorm:"index:idx_employees_created_at"`
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// IsInTeamOf reports whether managerID is this employee's manager.
func (e Employee) IsInTeamOf(managerID uuid.UUID) bool {
	return e.ManagerID != nil && *e.ManagerID == managerID
}
