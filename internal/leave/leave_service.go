package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-workforce/internal/approval"
	"go-workforce/internal/events"
	leaveerrors "go-workforce/internal/leave/errors"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	TeamSchedules(ctx context.Context, managerID string) ([]LeaveResponse, error)
	Pending(ctx context.Context) ([]LeaveResponse, error)
	Report(ctx context.Context) ([]LeaveResponse, error)
	Decide(ctx context.Context, id, approverID string, approved bool) (LeaveResponse, error)
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

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Request(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("leave request submitted",
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, startDate, endDate, err := validateCreateRequest(employeeID, req)
	if err != nil {
		log.Warn("leave request validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	row := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Type:       strings.TrimSpace(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     approval.StatusPending,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("leave request begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		log.Error("leave request persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(rid, "leave_request", row.ID.String(),
			events.EventLeaveRequested, events.RequestSubmittedTopic,
			events.RequestSubmittedEvent{
				EventType:  events.EventLeaveRequested,
				RequestID:  rid,
				SubjectID:  row.ID.String(),
				EmployeeID: employeeID,
				OccurredAt: row.CreatedAt,
			},
		)
		if err != nil {
			return LeaveResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("leave request outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("leave request commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("leave request created",
		zap.String("leave_id", row.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list own leave requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) TeamSchedules(ctx context.Context, managerID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListTeam(ctx, managerID)
	if err != nil {
		s.logger.Error("list team leave requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Pending(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.ListPending(ctx)
	if err != nil {
		s.logger.Error("list pending leave requests failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Report(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("leave report failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Decide(ctx context.Context, id, approverID string, approved bool) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.Bool("approved", approved),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	approver, err := qtx.FindEmployee(ctx, approverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, approval.ErrApproverNotFound
		}
		return LeaveResponse{}, err
	}

	subject, err := qtx.FindEmployee(ctx, row.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, approval.ErrSubjectNotFound
		}
		return LeaveResponse{}, err
	}

	status, err := approval.Decide(approver.Party(), subject.Party(), row.Status, approved)
	if err != nil {
		log.Warn("decide leave rejected",
			zap.String("leave_id", id),
			zap.String("approver_role", approver.Role),
			zap.String("current_status", row.Status),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	if err := qtx.MarkDecided(ctx, row.ID, status, approverUUID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		log.Error("decide leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	row.Status = status
	row.DecidedBy = &approverUUID
	row.DecidedAt = &now
	row.Employee = subject

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(rid, "leave_request", row.ID.String(),
			events.EventLeaveDecided, events.ApprovalDecidedTopic,
			events.ApprovalDecidedEvent{
				EventType:  events.EventLeaveDecided,
				RequestID:  rid,
				SubjectID:  row.ID.String(),
				EmployeeID: row.EmployeeID.String(),
				ApproverID: approverID,
				Status:     status,
				OccurredAt: now,
			},
		)
		if err != nil {
			return LeaveResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("decide leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.String("status", status),
	)
	return mapToResponse(*row), nil
}

func validateCreateRequest(employeeID string, req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	if strings.TrimSpace(req.Type) == "" {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrTypeRequired
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}

	return employeeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(v), time.UTC)
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		Type:       l.Type,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(rows []LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		res[i] = mapToResponse(l)
	}
	return res
}
