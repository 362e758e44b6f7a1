package timesheet

import (
	"context"
	"database/sql"
	"errors"

	"go-workforce/internal/approval"
	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployee(ctx context.Context, employeeID string) error
	Create(ctx context.Context, e *TimeEntry) error
	Update(ctx context.Context, e *TimeEntry) error
	FindByID(ctx context.Context, id string) (*TimeEntry, error)
	FindOpenByEmployee(ctx context.Context, employeeID string) (*TimeEntry, error)
	FindEmployee(ctx context.Context, id string) (*EmployeeRef, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]TimeEntry, error)
	ListTeam(ctx context.Context, managerID string) ([]TimeEntry, error)
	ListPending(ctx context.Context) ([]TimeEntry, error)
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

// LockEmployee serialises ledger writes for one employee until the
// surrounding transaction ends.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", employeeID).Error
}

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.conn(ctx).Omit("Employee").Save(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindOpenByEmployee returns the most recently created open session, or
// (nil, nil) when there is none.
func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.conn(ctx).
		Scopes(scope.ByEmployee(employeeID)).
		Where("clock_out IS NULL").
		Order("created_at DESC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeRef, error) {
	var ref EmployeeRef
	if err := r.conn(ctx).First(&ref, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.conn(ctx).
		Model(&TimeEntry{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.conn(ctx).
		Scopes(scope.ByEmployee(employeeID)).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListTeam(ctx context.Context, managerID string) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(scope.TeamOf(managerID)).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListPending(ctx context.Context) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(scope.ByStatus(approval.StatusPending)).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}
