package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ProcessPayroll(ctx context.Context, employeeID, period string) (PayrollResponse, error)
	GetReport(ctx context.Context, period string) ([]PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
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
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) ProcessPayroll(ctx context.Context, employeeID, rawPeriod string) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("process payroll requested",
		zap.String("employee_id", employeeID),
		zap.String("period", rawPeriod),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	p, err := period.Parse(rawPeriod)
	if err != nil {
		log.Warn("process payroll invalid period", zap.Error(err))
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriodFormat
	}
	key := p.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("process payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.LockEmployeePeriod(ctx, employeeID, key); err != nil {
		log.Error("process payroll lock failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	emp, err := qtx.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollResponse{}, err
	}

	exists, err := qtx.ExistsForPeriod(ctx, employeeID, key)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		log.Warn("process payroll duplicate",
			zap.String("employee_id", employeeID),
			zap.String("period", key),
		)
		return PayrollResponse{}, payrollerrors.ErrAlreadyProcessed
	}

	entries, err := qtx.ApprovedEntries(ctx, employeeID, p.Start(), p.LastDay())
	if err != nil {
		log.Error("process payroll load entries failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	pay := ComputeEntries(entries, emp.HourlyWage)
	record := &PayrollRecord{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		Period:      key,
		BasePay:     pay.BasePay,
		OvertimePay: pay.OvertimePay,
		Deductions:  pay.Deductions,
		TotalPay:    pay.TotalPay,
		Status:      StatusProcessed,
	}

	if err := qtx.Create(ctx, record); err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, payrollerrors.ErrAlreadyProcessed) {
			log.Error("process payroll persist failed", zap.Error(err))
		}
		return PayrollResponse{}, mapped
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.Employee = emp

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event, err := kafka.NewOutboxEvent(rid, "payroll_record", record.ID.String(),
			events.EventPayrollProcessed, events.PayrollProcessedTopic,
			events.PayrollProcessedEvent{
				EventType:  events.EventPayrollProcessed,
				RequestID:  rid,
				PayrollID:  record.ID.String(),
				EmployeeID: employeeID,
				Period:     key,
				TotalPay:   record.TotalPay.StringFixed(2),
				OccurredAt: record.CreatedAt,
			},
		)
		if err != nil {
			return PayrollResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("process payroll outbox persist failed", zap.Error(err))
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("process payroll commit failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	log.Info("process payroll success",
		zap.String("payroll_id", record.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("period", key),
		zap.Int("entries", len(entries)),
		zap.String("total_pay", record.TotalPay.StringFixed(2)),
	)
	return mapToResponse(*record), nil
}

func (s *service) GetReport(ctx context.Context, rawPeriod string) ([]PayrollResponse, error) {
	p, err := period.Parse(rawPeriod)
	if err != nil {
		return nil, payrollerrors.ErrInvalidPeriodFormat
	}
	rows, err := s.repo.ListByPeriod(ctx, p.String())
	if err != nil {
		s.logger.Error("payroll report failed", zap.String("period", p.String()), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("list payrolls failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func mapToResponse(p PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		Period:      p.Period,
		BasePay:     p.BasePay.StringFixed(2),
		OvertimePay: p.OvertimePay.StringFixed(2),
		Deductions:  p.Deductions.StringFixed(2),
		TotalPay:    p.TotalPay.StringFixed(2),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
	}
	return resp
}

func mapToListResponse(rows []PayrollRecord) []PayrollResponse {
	res := make([]PayrollResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res
}
