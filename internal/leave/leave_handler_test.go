package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/approval"
	"go-workforce/internal/leave"
	leaveerrors "go-workforce/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	RequestFn       func(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	ListMineFn      func(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	TeamSchedulesFn func(ctx context.Context, managerID string) ([]leave.LeaveResponse, error)
	PendingFn       func(ctx context.Context) ([]leave.LeaveResponse, error)
	ReportFn        func(ctx context.Context) ([]leave.LeaveResponse, error)
	DecideFn        func(ctx context.Context, id, approverID string, approved bool) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Request(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.RequestFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return f.ListMineFn(ctx, employeeID)
}
func (f *fakeLeaveService) TeamSchedules(ctx context.Context, managerID string) ([]leave.LeaveResponse, error) {
	return f.TeamSchedulesFn(ctx, managerID)
}
func (f *fakeLeaveService) Pending(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.PendingFn(ctx)
}
func (f *fakeLeaveService) Report(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.ReportFn(ctx)
}
func (f *fakeLeaveService) Decide(ctx context.Context, id, approverID string, approved bool) (leave.LeaveResponse, error) {
	return f.DecideFn(ctx, id, approverID, approved)
}

func performRequest(h gin.HandlerFunc, method, body string, setup func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if setup != nil {
		setup(c)
	}
	h(c)
	return w
}

func TestLeaveHandler_Request(t *testing.T) {
	employeeID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc := &fakeLeaveService{
			RequestFn: func(ctx context.Context, eid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Equal(t, "vacation", req.Type)
				return leave.LeaveResponse{ID: uuid.New().String(), Type: req.Type, Status: approval.StatusPending}, nil
			},
		}
		h := leave.NewHandler(svc)

		w := performRequest(h.Request, http.MethodPost,
			`{"type":"vacation","start_date":"2024-07-01","end_date":"2024-07-02"}`,
			func(c *gin.Context) { c.Set("employee_id", employeeID) })

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "vacation")
	})

	t.Run("missing dates", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})

		w := performRequest(h.Request, http.MethodPost, `{"type":"vacation"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("bad range", func(t *testing.T) {
		svc := &fakeLeaveService{
			RequestFn: func(ctx context.Context, eid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidDateRange
			},
		}
		h := leave.NewHandler(svc)

		w := performRequest(h.Request, http.MethodPost,
			`{"type":"vacation","start_date":"2024-07-03","end_date":"2024-07-02"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "start_date must be before or equal end_date")
	})
}

func TestLeaveHandler_Decide(t *testing.T) {
	leaveID := uuid.New().String()

	t.Run("conflict on decided leave", func(t *testing.T) {
		svc := &fakeLeaveService{
			DecideFn: func(ctx context.Context, id, approverID string, approved bool) (leave.LeaveResponse, error) {
				assert.Equal(t, leaveID, id)
				assert.True(t, approved)
				return leave.LeaveResponse{}, approval.ErrAlreadyDecided
			},
		}
		h := leave.NewHandler(svc)

		w := performRequest(h.Decide, http.MethodPut, `{"approved":true}`, func(c *gin.Context) {
			c.Params = gin.Params{{Key: "id", Value: leaveID}}
			c.Set("employee_id", uuid.New().String())
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("approved", func(t *testing.T) {
		svc := &fakeLeaveService{
			DecideFn: func(ctx context.Context, id, approverID string, approved bool) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{ID: id, Status: approval.StatusApproved}, nil
			},
		}
		h := leave.NewHandler(svc)

		w := performRequest(h.Decide, http.MethodPut, `{"approved":true}`, func(c *gin.Context) {
			c.Params = gin.Params{{Key: "id", Value: leaveID}}
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), approval.StatusApproved)
	})
}

func TestLeaveHandler_Lists(t *testing.T) {
	managerID := uuid.New().String()
	svc := &fakeLeaveService{
		TeamSchedulesFn: func(ctx context.Context, mid string) ([]leave.LeaveResponse, error) {
			assert.Equal(t, managerID, mid)
			return []leave.LeaveResponse{{ID: "l-1", EmployeeName: "Andi"}}, nil
		},
		ReportFn: func(ctx context.Context) ([]leave.LeaveResponse, error) {
			return []leave.LeaveResponse{{ID: "l-2"}}, nil
		},
	}
	h := leave.NewHandler(svc)

	w := performRequest(h.TeamSchedules, http.MethodGet, "", func(c *gin.Context) { c.Set("employee_id", managerID) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Andi")

	w = performRequest(h.Report, http.MethodGet, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "l-2")
}
