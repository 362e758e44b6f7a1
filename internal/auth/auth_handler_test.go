package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/auth"
	autherrors "go-workforce/internal/auth/errors"
	authMock "go-workforce/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success sets cookie", func(t *testing.T) {
		reqBody := auth.LoginRequest{Email: "test@example.com", Password: "password123"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(auth.LoginResponse{
				User:         auth.AuthResponse{ID: "emp-1", Email: "test@example.com", Role: "hr"},
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]any)
		assert.Equal(t, "test@example.com", data["user"].(map[string]any)["email"])
		assert.Equal(t, "refresh-token", data["refresh_token"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@test.com", Password: "123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("employee_id", "emp-1")
		c.Next()
	}, handler.Me)

	mockService.EXPECT().
		Me(gomock.Any(), "emp-1").
		Return(auth.AuthResponse{ID: "emp-1", Name: "Sari", Role: "manager"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Sari"`)
}
