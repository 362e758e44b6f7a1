package employee

import (
	"context"
	"database/sql"

	"go-workforce/internal/approval"
	"go-workforce/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	FindAllByRole(ctx context.Context, role string) ([]Employee, error)
	FindTeam(ctx context.Context, managerID string) ([]Employee, error)
	FindAvailable(ctx context.Context, managerID string) ([]Employee, error)
	SetManager(ctx context.Context, id uuid.UUID, managerID *uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	if err := r.conn(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	if err := r.conn(ctx).First(&e, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(&Employee{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAllByRole lists newest accounts first.
func (r *repository) FindAllByRole(ctx context.Context, role string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindTeam(ctx context.Context, managerID string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// FindAvailable lists employees with no manager or already reporting to managerID.
func (r *repository) FindAvailable(ctx context.Context, managerID string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Where("role = ?", approval.RoleEmployee).
		Where("(manager_id IS NULL OR manager_id = ?)", managerID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SetManager(ctx context.Context, id uuid.UUID, managerID *uuid.UUID) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("manager_id", managerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
