package employee

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-workforce/internal/approval"
	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	CreateForManager(ctx context.Context, managerID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetTeam(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	GetAvailable(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	AddToTeam(ctx context.Context, managerID, employeeID string) (EmployeeResponse, error)
	RemoveFromTeam(ctx context.Context, managerID, employeeID string) (EmployeeResponse, error)
	SeedManager(ctx context.Context, name, email, password string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return s.create(ctx, nil, req)
}

// CreateForManager creates an account on behalf of a manager. New employees
// join the manager's team; managers cannot create hr accounts.
func (s *service) CreateForManager(ctx context.Context, managerID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	managerUUID, err := uuid.Parse(managerID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.Role == approval.RoleHR {
		return EmployeeResponse{}, employeeerrors.ErrRoleNotAllowed
	}
	req.ManagerID = nil
	return s.create(ctx, &managerUUID, req)
}

func (s *service) create(ctx context.Context, creatorManagerID *uuid.UUID, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role := req.Role
	if role == "" {
		role = approval.RoleEmployee
	}
	if !approval.IsValidRole(role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	wage := decimal.Zero
	if req.HourlyWage != nil {
		if *req.HourlyWage < 0 {
			return EmployeeResponse{}, employeeerrors.ErrInvalidWage
		}
		wage = decimal.NewFromFloat(*req.HourlyWage).Round(2)
	}

	var managerID *uuid.UUID
	switch {
	case creatorManagerID != nil && role == approval.RoleEmployee:
		managerID = creatorManagerID
	case req.ManagerID != nil && *req.ManagerID != "":
		id, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		managerID = &id
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		log.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	email := normalizeEmail(req.Email)
	exists, err := qtx.EmailExists(ctx, email, nil)
	if err != nil {
		log.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		log.Warn("create employee email taken", zap.String("email", email))
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	if managerID != nil && creatorManagerID == nil {
		if err := s.ensureManager(ctx, qtx, *managerID); err != nil {
			log.Warn("create employee invalid manager", zap.String("manager_id", managerID.String()), zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	empl := &Employee{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		HourlyWage:   wage,
		ManagerID:    managerID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChanged(ctx, tx, events.EventEmployeeCreated, empl); err != nil {
		log.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("role", empl.Role),
	)

	return mapToResponse(*empl), nil
}

func (s *service) ensureManager(ctx context.Context, repo Repository, managerID uuid.UUID) error {
	mgr, err := repo.FindByID(ctx, managerID.String())
	if err != nil {
		if errors.Is(mapRepositoryError(err), employeeerrors.ErrEmployeeNotFound) {
			return employeeerrors.ErrManagerNotFound
		}
		return err
	}
	if mgr.Role != approval.RoleManager {
		return employeeerrors.ErrNotAManager
	}
	return nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	empUUID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.HourlyWage != nil && *req.HourlyWage < 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidWage
	}

	var hash string
	if req.Password != nil && *req.Password != "" {
		hash, err = HashPassword(*req.Password)
		if err != nil {
			log.Error("update employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		log.Warn("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != empl.Email {
			taken, err := qtx.EmailExists(ctx, email, &empUUID)
			if err != nil {
				log.Error("update employee email check failed", zap.Error(err))
				return EmployeeResponse{}, err
			}
			if taken {
				log.Warn("update employee email taken", zap.String("email", email))
				return EmployeeResponse{}, employeeerrors.ErrEmailTaken
			}
			empl.Email = email
		}
	}
	if req.Name != nil {
		empl.Name = strings.TrimSpace(*req.Name)
	}
	if req.HourlyWage != nil {
		empl.HourlyWage = decimal.NewFromFloat(*req.HourlyWage).Round(2)
	}
	if hash != "" {
		empl.PasswordHash = hash
	}

	if err := qtx.Update(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChanged(ctx, tx, events.EventEmployeeUpdated, empl); err != nil {
		log.Error("update employee outbox persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	rows, err := s.repo.FindAllByRole(ctx, approval.RoleEmployee)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetTeam(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindTeam(ctx, managerID)
	if err != nil {
		s.logger.Error("get team failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAvailable(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAvailable(ctx, managerID)
	if err != nil {
		s.logger.Error("get available employees failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) AddToTeam(ctx context.Context, managerID, employeeID string) (EmployeeResponse, error) {
	return s.changeTeam(ctx, managerID, employeeID, true)
}

func (s *service) RemoveFromTeam(ctx context.Context, managerID, employeeID string) (EmployeeResponse, error) {
	return s.changeTeam(ctx, managerID, employeeID, false)
}

func (s *service) changeTeam(ctx context.Context, managerID, employeeID string, add bool) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("change team requested",
		zap.String("manager_id", managerID),
		zap.String("employee_id", employeeID),
		zap.Bool("add", add),
	)

	managerUUID, err := uuid.Parse(managerID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("change team begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if add {
		if empl.Role != approval.RoleEmployee {
			return EmployeeResponse{}, employeeerrors.ErrOnlyEmployeesInTeam
		}
		if empl.IsInTeamOf(managerUUID) {
			return mapToResponse(*empl), nil
		}
		if empl.ManagerID != nil {
			log.Warn("change team employee has another manager",
				zap.String("employee_id", employeeID),
				zap.String("current_manager_id", empl.ManagerID.String()),
			)
			return EmployeeResponse{}, employeeerrors.ErrAssignedToOtherTeam
		}
		empl.ManagerID = &managerUUID
	} else {
		if !empl.IsInTeamOf(managerUUID) {
			return EmployeeResponse{}, employeeerrors.ErrNotInTeam
		}
		empl.ManagerID = nil
	}

	if err := qtx.SetManager(ctx, empl.ID, empl.ManagerID); err != nil {
		log.Error("change team persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChanged(ctx, tx, events.EventTeamChanged, empl); err != nil {
		log.Error("change team outbox persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("change team commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("change team success",
		zap.String("manager_id", managerID),
		zap.String("employee_id", employeeID),
		zap.Bool("add", add),
	)
	return mapToResponse(*empl), nil
}

// SeedManager creates the bootstrap manager account unless the email exists.
func (s *service) SeedManager(ctx context.Context, name, email, password string) error {
	email = normalizeEmail(email)
	exists, err := s.repo.EmailExists(ctx, email, nil)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debug("seed manager already present", zap.String("email", email))
		return nil
	}

	_, err = s.create(ctx, nil, CreateEmployeeRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     approval.RoleManager,
	})
	return err
}

func (s *service) enqueueChanged(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	payload := events.EmployeeChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: empl.ID.String(),
		Role:       empl.Role,
		ManagerID:  uuidToString(empl.ManagerID),
		OccurredAt: time.Now().UTC(),
	}
	event, err := kafka.NewOutboxEvent(rid, "employee", empl.ID.String(), eventType, events.EmployeeChangedTopic, payload)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapToResponse(empl Employee) EmployeeResponse {
	wage, _ := empl.HourlyWage.Float64()
	return EmployeeResponse{
		ID:         empl.ID.String(),
		Name:       empl.Name,
		Email:      empl.Email,
		Role:       empl.Role,
		HourlyWage: wage,
		ManagerID:  uuidToString(empl.ManagerID),
		CreatedAt:  empl.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
