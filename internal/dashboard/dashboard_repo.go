package dashboard

import (
	"context"
	"time"

	"go-workforce/internal/approval"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ApprovedHours is one employee's approved hours within a date range.
type ApprovedHours struct {
	EmployeeID    uuid.UUID
	HourlyWage    decimal.Decimal
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	CountPendingTimesheets(ctx context.Context) (int64, error)
	SumPayroll(ctx context.Context, period string) (decimal.Decimal, error)
	ApprovedHoursByEmployee(ctx context.Context, from, to time.Time) ([]ApprovedHours, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("role = ?", approval.RoleEmployee).
		Count(&n).Error
	return n, err
}

func (r *repository) CountPendingLeaves(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("status = ?", approval.StatusPending).
		Count(&n).Error
	return n, err
}

func (r *repository) CountPendingTimesheets(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("time_entries").
		Where("status = ?", approval.StatusPending).
		Count(&n).Error
	return n, err
}

func (r *repository) SumPayroll(ctx context.Context, period string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Table("payroll_records").
		Select("SUM(total_pay)").
		Where("period = ?", period).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *repository) ApprovedHoursByEmployee(ctx context.Context, from, to time.Time) ([]ApprovedHours, error) {
	var rows []ApprovedHours
	err := r.db.WithContext(ctx).
		Table("time_entries AS t").
		Select(`t.employee_id AS employee_id,
			e.hourly_wage AS hourly_wage,
			SUM(t.total_hours - t.overtime_hours) AS regular_hours,
			SUM(t.overtime_hours) AS overtime_hours`).
		Joins("JOIN employees e ON e.id = t.employee_id").
		Where("t.status = ?", approval.StatusApproved).
		Where("t.date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Group("t.employee_id, e.hourly_wage").
		Scan(&rows).Error
	return rows, err
}
