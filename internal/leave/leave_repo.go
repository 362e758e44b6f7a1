package leave

import (
	"context"
	"database/sql"
	"time"

	"go-workforce/internal/approval"
	"go-workforce/internal/shared/dbtx"
	"go-workforce/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindEmployee(ctx context.Context, id string) (*EmployeeRef, error)
	MarkDecided(ctx context.Context, id uuid.UUID, status string, decidedBy uuid.UUID, decidedAt time.Time) error
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListTeam(ctx context.Context, managerID string) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*EmployeeRef, error) {
	var ref EmployeeRef
	if err := r.conn(ctx).First(&ref, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repository) MarkDecided(ctx context.Context, id uuid.UUID, status string, decidedBy uuid.UUID, decidedAt time.Time) error {
	res := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"decided_by": decidedBy,
			"decided_at": decidedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.conn(ctx).
		Scopes(scope.ByEmployee(employeeID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListTeam(ctx context.Context, managerID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(scope.TeamOf(managerID)).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListPending(ctx context.Context) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(scope.ByStatus(approval.StatusPending)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListAll(ctx context.Context) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.conn(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
