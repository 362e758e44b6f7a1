package leave

import (
	"time"

	"go-workforce/internal/approval"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	Type      string    `gorm:"type:varchar(50);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_start_date"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    *string   `gorm:"type:text"`

	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_status"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time

	CreatedAt time.Time `gorm:"index:idx_leave_requests_created_at"`
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

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
