package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/dashboard"
	dashboardMock "go-workforce/internal/dashboard/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestDashboardHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ok", func(t *testing.T) {
		svc := dashboardMock.NewMockService(ctrl)
		svc.EXPECT().GetStats(gomock.Any()).Return(dashboard.StatsResponse{TotalEmployees: 3, TotalPayroll: "142.50"}, nil)

		h := dashboard.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/api/hr/stats")

		h.Stats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPayroll":"142.50"`)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := dashboardMock.NewMockService(ctrl)
		svc.EXPECT().GetStats(gomock.Any()).Return(dashboard.StatsResponse{}, errors.New("db down"))

		h := dashboard.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/api/hr/stats")

		h.Stats(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDashboardHandler_PendingRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := dashboardMock.NewMockService(ctrl)
	svc.EXPECT().PendingRequests(gomock.Any()).Return(dashboard.PendingRequestsResponse{}, nil)

	h := dashboard.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/api/hr/pending-requests")

	h.PendingRequests(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
