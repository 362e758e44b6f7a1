package payroll_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/payroll"
	payrollerrors "go-workforce/internal/payroll/errors"
	payrollMock "go-workforce/internal/payroll/mock"
	"go-workforce/internal/timesheet"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *payrollMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := payrollMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: payroll.NewServiceWithOutbox(db, repo, outboxRepo),
		repo:    repo,
		outbox:  outboxRepo,
	}
}

func TestPayrollService_ProcessPayroll(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	emp := &payroll.EmployeeRef{ID: employeeID, Name: "Andi", HourlyWage: d("20")}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeePeriod(ctx, employeeID.String(), "2024-03").Return(nil)
		deps.repo.EXPECT().FindEmployee(ctx, employeeID.String()).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, employeeID.String(), "2024-03").Return(false, nil)
		deps.repo.EXPECT().
			ApprovedEntries(ctx, employeeID.String(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, from, to time.Time) ([]timesheet.TimeEntry, error) {
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)
				assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), to)
				return []timesheet.TimeEntry{{TotalHours: d("10"), OvertimeHours: d("2")}}, nil
			})
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *payroll.PayrollRecord) error {
				assert.Equal(t, employeeID, p.EmployeeID)
				assert.Equal(t, "2024-03", p.Period)
				assert.Equal(t, payroll.StatusProcessed, p.Status)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EventPayrollProcessed, ev.EventType)
				assert.Equal(t, events.PayrollProcessedTopic, ev.Topic)
				return nil
			})

		resp, err := deps.service.ProcessPayroll(ctx, employeeID.String(), "2024-03")

		assert.NoError(t, err)
		assert.Equal(t, "160.00", resp.BasePay)
		assert.Equal(t, "60.00", resp.OvertimePay)
		assert.Equal(t, "0.00", resp.Deductions)
		assert.Equal(t, "220.00", resp.TotalPay)
		assert.Equal(t, "Andi", resp.EmployeeName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("leap year february bounds", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeePeriod(ctx, employeeID.String(), "2024-02").Return(nil)
		deps.repo.EXPECT().FindEmployee(ctx, employeeID.String()).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, employeeID.String(), "2024-02").Return(false, nil)
		deps.repo.EXPECT().
			ApprovedEntries(ctx, employeeID.String(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, from, to time.Time) ([]timesheet.TimeEntry, error) {
				assert.Equal(t, 29, to.Day())
				return nil, nil
			})
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.ProcessPayroll(ctx, employeeID.String(), "2024-02")

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.TotalPay)
	})

	t.Run("already processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeePeriod(ctx, employeeID.String(), "2024-03").Return(nil)
		deps.repo.EXPECT().FindEmployee(ctx, employeeID.String()).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, employeeID.String(), "2024-03").Return(true, nil)

		_, err := deps.service.ProcessPayroll(ctx, employeeID.String(), "2024-03")

		assert.ErrorIs(t, err, payrollerrors.ErrAlreadyProcessed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeePeriod(ctx, employeeID.String(), "2024-03").Return(nil)
		deps.repo.EXPECT().FindEmployee(ctx, employeeID.String()).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, employeeID.String(), "2024-03").Return(false, nil)
		deps.repo.EXPECT().ApprovedEntries(ctx, employeeID.String(), gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_employee_period"})

		_, err := deps.service.ProcessPayroll(ctx, employeeID.String(), "2024-03")

		assert.ErrorIs(t, err, payrollerrors.ErrAlreadyProcessed)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeePeriod(ctx, employeeID.String(), "2024-03").Return(nil)
		deps.repo.EXPECT().FindEmployee(ctx, employeeID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ProcessPayroll(ctx, employeeID.String(), "2024-03")

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid period starts no transaction", func(t *testing.T) {
		for _, in := range []string{"2024-13", "2024-3", "March"} {
			deps := setupServiceTest(t)

			_, err := deps.service.ProcessPayroll(ctx, employeeID.String(), in)

			assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat, in)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			deps.db.Close()
		}
	})

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ProcessPayroll(ctx, "nope", "2024-03")

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
	})

	t.Run("entries load failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeePeriod(ctx, employeeID.String(), "2024-03").Return(nil)
		deps.repo.EXPECT().FindEmployee(ctx, employeeID.String()).Return(emp, nil)
		deps.repo.EXPECT().ExistsForPeriod(ctx, employeeID.String(), "2024-03").Return(false, nil)
		deps.repo.EXPECT().
			ApprovedEntries(ctx, employeeID.String(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := deps.service.ProcessPayroll(ctx, employeeID.String(), "2024-03")

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Reports(t *testing.T) {
	ctx := context.Background()

	t.Run("report by period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			ListByPeriod(ctx, "2024-03").
			Return([]payroll.PayrollRecord{
				{ID: uuid.New(), Period: "2024-03", TotalPay: d("220"), Employee: &payroll.EmployeeRef{Name: "Andi"}},
			}, nil)

		resp, err := deps.service.GetReport(ctx, "2024-03")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "220.00", resp[0].TotalPay)
		assert.Equal(t, "Andi", resp[0].EmployeeName)
	})

	t.Run("report rejects bad period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetReport(ctx, "")

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat)
	})

	t.Run("list all", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().ListAll(ctx).Return(nil, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
