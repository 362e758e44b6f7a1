package payroll_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/payroll"
	payrollerrors "go-workforce/internal/payroll/errors"
	payrollMock "go-workforce/internal/payroll/mock"

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

func TestPayrollHandler_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employeeID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			ProcessPayroll(gomock.Any(), employeeID, "2024-03").
			Return(payroll.PayrollResponse{EmployeeID: employeeID, Period: "2024-03", TotalPay: "220.00"}, nil)

		h := payroll.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/api/hr/payroll",
			`{"employee_id":"`+employeeID+`","period":"2024-03"}`)

		h.Process(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "220.00")
	})

	t.Run("duplicate is conflict", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			ProcessPayroll(gomock.Any(), employeeID, "2024-03").
			Return(payroll.PayrollResponse{}, payrollerrors.ErrAlreadyProcessed)

		h := payroll.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/api/hr/payroll",
			`{"employee_id":"`+employeeID+`","period":"2024-03"}`)

		h.Process(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing period", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		h := payroll.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/api/hr/payroll", `{"employee_id":"`+employeeID+`"}`)

		h.Process(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestPayrollHandler_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("passes period query", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			GetReport(gomock.Any(), "2024-02").
			Return([]payroll.PayrollResponse{{Period: "2024-02"}}, nil)

		h := payroll.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/api/hr/reports/payroll?period=2024-02", "")

		h.Report(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2024-02")
	})

	t.Run("invalid period", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().
			GetReport(gomock.Any(), "bad").
			Return(nil, payrollerrors.ErrInvalidPeriodFormat)

		h := payroll.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/api/hr/reports/payroll?period=bad", "")

		h.Report(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list all", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any()).Return([]payroll.PayrollResponse{}, nil)

		h := payroll.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/api/hr/payrolls", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
