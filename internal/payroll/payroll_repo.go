package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-workforce/internal/approval"
	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/shared/scope"
	"go-workforce/internal/timesheet"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployeePeriod(ctx context.Context, employeeID, period string) error
	FindEmployee(ctx context.Context, id string) (*EmployeeRef, error)
	ExistsForPeriod(ctx context.Context, employeeID, period string) (bool, error)
	ApprovedEntries(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.TimeEntry, error)
	Create(ctx context.Context, p *PayrollRecord) error
	ListByPeriod(ctx context.Context, period string) ([]PayrollRecord, error)
	ListAll(ctx context.Context) ([]PayrollRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

// LockEmployeePeriod serializes processing of one (employee, period) pair
// until the surrounding transaction ends.
func (r *repository) LockEmployeePeriod(ctx context.Context, employeeID, period string) error {
	return r.conn(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "payroll:"+employeeID+":"+period).
		Error
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeRef, error) {
	var ref EmployeeRef
	if err := r.conn(ctx).First(&ref, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID, period string) (bool, error) {
	var row PayrollRecord
	err := r.conn(ctx).
		Select("id").
		Where("employee_id = ? AND period = ?", employeeID, period).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repository) ApprovedEntries(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.TimeEntry, error) {
	var rows []timesheet.TimeEntry
	err := r.conn(ctx).
		Scopes(
			scope.ByEmployee(employeeID),
			scope.ByStatus(approval.StatusApproved),
			scope.DateBetween("date", from, to),
		).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, p *PayrollRecord) error {
	return r.conn(ctx).Omit("Employee").Create(p).Error
}

func (r *repository) ListByPeriod(ctx context.Context, period string) ([]PayrollRecord, error) {
	var rows []PayrollRecord
	err := r.conn(ctx).
		Preload("Employee").
		Where("period = ?", period).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListAll(ctx context.Context) ([]PayrollRecord, error) {
	var rows []PayrollRecord
	err := r.conn(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
