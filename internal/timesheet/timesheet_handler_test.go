package timesheet_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/approval"
	"go-workforce/internal/timesheet"
	timesheeterrors "go-workforce/internal/timesheet/errors"
	timesheetMock "go-workforce/internal/timesheet/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestTimesheetHandler_ClockIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employeeID := uuid.New().String()

	t.Run("empty body is accepted", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			ClockIn(gomock.Any(), employeeID, timesheet.ClockInRequest{}).
			Return(timesheet.TimeEntryResponse{ID: uuid.New().String(), Status: approval.StatusPending}, nil)

		h := timesheet.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/api/employee/clock-in", "")
		c.Set("employee_id", employeeID)

		h.ClockIn(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("already clocked in", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			ClockIn(gomock.Any(), employeeID, gomock.Any()).
			Return(timesheet.TimeEntryResponse{}, timesheeterrors.ErrAlreadyClockedIn)

		h := timesheet.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/api/employee/clock-in", `{"location":"HQ"}`)
		c.Set("employee_id", employeeID)

		h.ClockIn(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Already clocked in")
	})
}

func TestTimesheetHandler_ClockOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := timesheetMock.NewMockService(ctrl)
	svc.EXPECT().
		ClockOut(gomock.Any(), gomock.Any()).
		Return(timesheet.TimeEntryResponse{}, timesheeterrors.ErrNoActiveClockIn)

	h := timesheet.NewHandler(svc)
	c, w := newContext(http.MethodPost, "/api/employee/clock-out", "")
	c.Set("employee_id", uuid.New().String())

	h.ClockOut(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTimesheetHandler_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("approve", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			Decide(gomock.Any(), entryID, approverID, true).
			Return(timesheet.TimeEntryResponse{ID: entryID, Status: approval.StatusApproved}, nil)

		h := timesheet.NewHandler(svc)
		c, w := newContext(http.MethodPut, "/api/manager/timesheets/"+entryID+"/approve", `{"approved":true}`)
		c.Params = gin.Params{{Key: "id", Value: entryID}}
		c.Set("employee_id", approverID)

		h.Decide(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), approval.StatusApproved)
	})

	t.Run("missing decision", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)

		h := timesheet.NewHandler(svc)
		c, w := newContext(http.MethodPut, "/api/manager/timesheets/"+entryID+"/approve", `{}`)
		c.Params = gin.Params{{Key: "id", Value: entryID}}

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not authorized", func(t *testing.T) {
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			Decide(gomock.Any(), entryID, approverID, false).
			Return(timesheet.TimeEntryResponse{}, approval.ErrNotAuthorized)

		h := timesheet.NewHandler(svc)
		c, w := newContext(http.MethodPut, "/api/manager/timesheets/"+entryID+"/approve", `{"approved":false}`)
		c.Params = gin.Params{{Key: "id", Value: entryID}}
		c.Set("employee_id", approverID)

		h.Decide(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestTimesheetHandler_AttendanceReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("requires employeeId", func(t *testing.T) {
		h := timesheet.NewHandler(timesheetMock.NewMockService(ctrl))
		c, w := newContext(http.MethodGet, "/api/hr/reports/attendance", "")

		h.AttendanceReport(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists entries", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := timesheetMock.NewMockService(ctrl)
		svc.EXPECT().
			AttendanceReport(gomock.Any(), employeeID).
			Return([]timesheet.TimeEntryResponse{{ID: "e-1", EmployeeID: employeeID}}, nil)

		h := timesheet.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/api/hr/reports/attendance?employeeId="+employeeID, "")

		h.AttendanceReport(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "e-1")
	})
}
