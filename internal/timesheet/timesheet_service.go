package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-workforce/internal/approval"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"
	timesheeterrors "go-workforce/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, employeeID string) (TimeEntryResponse, error)
	List(ctx context.Context, employeeID string) ([]TimeEntryResponse, error)
	TeamTimesheets(ctx context.Context, managerID string) ([]TimeEntryResponse, error)
	Pending(ctx context.Context) ([]TimeEntryResponse, error)
	AttendanceReport(ctx context.Context, employeeID string) ([]TimeEntryResponse, error)
	Decide(ctx context.Context, id, approverID string, approved bool) (TimeEntryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (TimeEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clock in requested", zap.String("employee_id", employeeID))

	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return TimeEntryResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	now := s.now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		date, err = time.ParseInLocation(dateLayout, req.Date, time.UTC)
		if err != nil {
			return TimeEntryResponse{}, timesheeterrors.ErrInvalidDate
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clock in begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployee(ctx, employeeID); err != nil {
		log.Error("clock in lock failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	open, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		log.Error("clock in open session lookup failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	if open != nil {
		log.Warn("clock in rejected, session already open",
			zap.String("employee_id", employeeID),
			zap.String("time_entry_id", open.ID.String()),
		)
		return TimeEntryResponse{}, timesheeterrors.ErrAlreadyClockedIn
	}

	entry := &TimeEntry{
		ID:         uuid.New(),
		EmployeeID: empUUID,
		Date:       date,
		ClockIn:    &now,
		Status:     approval.StatusPending,
		Location:   req.Location,
	}

	if err := qtx.Create(ctx, entry); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, timesheeterrors.ErrAlreadyClockedIn) {
			log.Warn("clock in lost race on open session index", zap.String("employee_id", employeeID))
		} else {
			log.Error("clock in persist failed", zap.Error(err))
		}
		return TimeEntryResponse{}, mapped
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(rid, "time_entry", entry.ID.String(),
			events.EventTimesheetOpened, events.RequestSubmittedTopic,
			events.RequestSubmittedEvent{
				EventType:  events.EventTimesheetOpened,
				RequestID:  rid,
				SubjectID:  entry.ID.String(),
				EmployeeID: employeeID,
				OccurredAt: now,
			},
		)
		if err != nil {
			return TimeEntryResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("clock in outbox persist failed", zap.Error(err))
			return TimeEntryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("clock in commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	log.Info("clock in success",
		zap.String("employee_id", employeeID),
		zap.String("time_entry_id", entry.ID.String()),
	)
	return mapToResponse(*entry), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (TimeEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clock out requested", zap.String("employee_id", employeeID))

	if _, err := uuid.Parse(employeeID); err != nil {
		return TimeEntryResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clock out begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployee(ctx, employeeID); err != nil {
		log.Error("clock out lock failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	entry, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		log.Error("clock out open session lookup failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	if entry == nil {
		log.Warn("clock out rejected, no open session", zap.String("employee_id", employeeID))
		return TimeEntryResponse{}, timesheeterrors.ErrNoActiveClockIn
	}

	now := s.now()
	clockIn := now
	if entry.ClockIn != nil {
		clockIn = *entry.ClockIn
	}
	entry.ClockOut = &now
	entry.TotalHours, entry.OvertimeHours = WorkedHours(clockIn, now)

	if err := qtx.Update(ctx, entry); err != nil {
		log.Error("clock out persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("clock out commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	log.Info("clock out success",
		zap.String("employee_id", employeeID),
		zap.String("time_entry_id", entry.ID.String()),
		zap.String("total_hours", entry.TotalHours.StringFixed(2)),
		zap.String("overtime_hours", entry.OvertimeHours.StringFixed(2)),
	)
	return mapToResponse(*entry), nil
}

func (s *service) List(ctx context.Context, employeeID string) ([]TimeEntryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, timesheeterrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list time entries failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// AttendanceReport is List for hr: the employee id comes from the query
// string, so a malformed one is the caller's fault.
func (s *service) AttendanceReport(ctx context.Context, employeeID string) ([]TimeEntryResponse, error) {
	return s.List(ctx, employeeID)
}

func (s *service) TeamTimesheets(ctx context.Context, managerID string) ([]TimeEntryResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, timesheeterrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListTeam(ctx, managerID)
	if err != nil {
		s.logger.Error("list team time entries failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Pending(ctx context.Context) ([]TimeEntryResponse, error) {
	rows, err := s.repo.ListPending(ctx)
	if err != nil {
		s.logger.Error("list pending time entries failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Decide(ctx context.Context, id, approverID string, approved bool) (TimeEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide timesheet requested",
		zap.String("time_entry_id", id),
		zap.String("approver_id", approverID),
		zap.Bool("approved", approved),
	)

	if _, err := uuid.Parse(id); err != nil {
		return TimeEntryResponse{}, timesheeterrors.ErrInvalidTimeEntryID
	}
	if _, err := uuid.Parse(approverID); err != nil {
		return TimeEntryResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide timesheet begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TimeEntryResponse{}, mapRepositoryError(err)
	}

	approver, err := qtx.FindEmployee(ctx, approverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, approval.ErrApproverNotFound
		}
		return TimeEntryResponse{}, err
	}

	subject, err := qtx.FindEmployee(ctx, entry.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, approval.ErrSubjectNotFound
		}
		return TimeEntryResponse{}, err
	}

	status, err := approval.Decide(approver.Party(), subject.Party(), entry.Status, approved)
	if err != nil {
		log.Warn("decide timesheet rejected",
			zap.String("time_entry_id", id),
			zap.String("approver_role", approver.Role),
			zap.String("current_status", entry.Status),
			zap.Error(err),
		)
		return TimeEntryResponse{}, err
	}

	if err := qtx.UpdateStatus(ctx, entry.ID, status); err != nil {
		log.Error("decide timesheet persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapRepositoryError(err)
	}
	entry.Status = status
	entry.Employee = subject

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(rid, "time_entry", entry.ID.String(),
			events.EventTimesheetDecided, events.ApprovalDecidedTopic,
			events.ApprovalDecidedEvent{
				EventType:  events.EventTimesheetDecided,
				RequestID:  rid,
				SubjectID:  entry.ID.String(),
				EmployeeID: entry.EmployeeID.String(),
				ApproverID: approverID,
				Status:     status,
				OccurredAt: s.now(),
			},
		)
		if err != nil {
			return TimeEntryResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("decide timesheet outbox persist failed", zap.Error(err))
			return TimeEntryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide timesheet commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	log.Info("decide timesheet success",
		zap.String("time_entry_id", id),
		zap.String("approver_id", approverID),
		zap.String("status", status),
	)
	return mapToResponse(*entry), nil
}

func mapToResponse(e TimeEntry) TimeEntryResponse {
	total, _ := e.TotalHours.Float64()
	overtime, _ := e.OvertimeHours.Float64()
	resp := TimeEntryResponse{
		ID:            e.ID.String(),
		EmployeeID:    e.EmployeeID.String(),
		Date:          e.Date.Format(dateLayout),
		TotalHours:    total,
		OvertimeHours: overtime,
		Status:        e.Status,
		Location:      e.Location,
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
	}
	if e.ClockIn != nil {
		v := e.ClockIn.UTC().Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if e.ClockOut != nil {
		v := e.ClockOut.UTC().Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}

func mapToListResponse(rows []TimeEntry) []TimeEntryResponse {
	res := make([]TimeEntryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
