package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-workforce/internal/approval"
	"go-workforce/internal/events"
	"go-workforce/internal/leave"
	leaveerrors "go-workforce/internal/leave/errors"
	leaveMock "go-workforce/internal/leave/mock"
	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *leaveMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: leave.NewServiceWithOutbox(db, repo, outboxRepo),
		repo:    repo,
		outbox:  outboxRepo,
	}
}

func TestLeaveService_Request(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		reason := "family trip"
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *leave.LeaveRequest) error {
				assert.Equal(t, employeeID, l.EmployeeID)
				assert.Equal(t, "vacation", l.Type)
				assert.Equal(t, approval.StatusPending, l.Status)
				assert.Equal(t, "2024-07-01", l.StartDate.Format("2006-01-02"))
				assert.Equal(t, "2024-07-05", l.EndDate.Format("2006-01-02"))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.RequestSubmittedTopic, ev.Topic)
				assert.Equal(t, events.EventLeaveRequested, ev.EventType)
				var payload events.RequestSubmittedEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, employeeID.String(), payload.EmployeeID)
				return nil
			})

		resp, err := deps.service.Request(ctx, employeeID.String(), leave.CreateLeaveRequest{
			Type:      "vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-05",
			Reason:    &reason,
		})

		assert.NoError(t, err)
		assert.Equal(t, approval.StatusPending, resp.Status)
		assert.Equal(t, "family trip", *resp.Reason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("single day leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Request(ctx, employeeID.String(), leave.CreateLeaveRequest{
			Type: "sick", StartDate: "2024-07-01", EndDate: "2024-07-01",
		})

		assert.NoError(t, err)
	})

	t.Run("outbox failure rolls back the request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Request(ctx, employeeID.String(), leave.CreateLeaveRequest{
			Type: "sick", StartDate: "2024-03-01", EndDate: "2024-03-02",
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("start after end", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Request(ctx, employeeID.String(), leave.CreateLeaveRequest{
			Type: "sick", StartDate: "2024-07-05", EndDate: "2024-07-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Request(ctx, employeeID.String(), leave.CreateLeaveRequest{
			Type: "sick", StartDate: "01-07-2024", EndDate: "2024-07-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("blank type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Request(ctx, employeeID.String(), leave.CreateLeaveRequest{
			Type: "  ", StartDate: "2024-07-01", EndDate: "2024-07-01",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrTypeRequired)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()

	managerID := uuid.New()
	workerID := uuid.New()
	leaveID := uuid.New()
	worker := &leave.EmployeeRef{ID: workerID, Name: "Andi", Role: approval.RoleEmployee, ManagerID: &managerID}
	manager := &leave.EmployeeRef{ID: managerID, Role: approval.RoleManager}

	pending := func() *leave.LeaveRequest {
		return &leave.LeaveRequest{ID: leaveID, EmployeeID: workerID, Status: approval.StatusPending, Type: "vacation"}
	}

	t.Run("manager rejects own report", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pending(), nil)
		deps.repo.EXPECT().FindEmployee(ctx, managerID.String()).Return(manager, nil)
		deps.repo.EXPECT().FindEmployee(ctx, workerID.String()).Return(worker, nil)
		deps.repo.EXPECT().
			MarkDecided(ctx, leaveID, approval.StatusRejected, managerID, gomock.Any()).
			Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EventLeaveDecided, ev.EventType)
				assert.Equal(t, leaveID.String(), ev.AggregateID)
				return nil
			})

		resp, err := deps.service.Decide(ctx, leaveID.String(), managerID.String(), false)

		assert.NoError(t, err)
		assert.Equal(t, approval.StatusRejected, resp.Status)
		assert.Equal(t, managerID.String(), *resp.DecidedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("manager outside the team is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		stranger := &leave.EmployeeRef{ID: uuid.New(), Role: approval.RoleManager}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pending(), nil)
		deps.repo.EXPECT().FindEmployee(ctx, stranger.ID.String()).Return(stranger, nil)
		deps.repo.EXPECT().FindEmployee(ctx, workerID.String()).Return(worker, nil)

		_, err := deps.service.Decide(ctx, leaveID.String(), stranger.ID.String(), true)

		assert.ErrorIs(t, err, approval.ErrNotAuthorized)
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		decided := pending()
		decided.Status = approval.StatusRejected

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(decided, nil)
		deps.repo.EXPECT().FindEmployee(ctx, managerID.String()).Return(manager, nil)
		deps.repo.EXPECT().FindEmployee(ctx, workerID.String()).Return(worker, nil)

		_, err := deps.service.Decide(ctx, leaveID.String(), managerID.String(), true)

		assert.ErrorIs(t, err, approval.ErrAlreadyDecided)
	})

	t.Run("unknown leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Decide(ctx, leaveID.String(), managerID.String(), true)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Lists(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().
		ListTeam(ctx, managerID.String()).
		Return([]leave.LeaveRequest{
			{ID: uuid.New(), StartDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Employee: &leave.EmployeeRef{Name: "Budi"}},
			{ID: uuid.New(), StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Employee: &leave.EmployeeRef{Name: "Andi"}},
		}, nil)

	resp, err := deps.service.TeamSchedules(ctx, managerID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "2024-08-01", resp[0].StartDate)
	assert.Equal(t, "Budi", resp[0].EmployeeName)

	deps.repo.EXPECT().ListAll(ctx).Return(nil, nil)
	all, err := deps.service.Report(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	_, err = deps.service.ListMine(ctx, "bad-id")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
}
