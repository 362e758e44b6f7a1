package auth_test

import (
	"context"
	"testing"
	"time"

	"go-workforce/internal/auth"
	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/auth/token"
	"go-workforce/internal/employee"
	employeeMock "go-workforce/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newEmployee(t *testing.T, password string) *employee.Employee {
	t.Helper()
	hash, err := employee.HashPassword(password)
	assert.NoError(t, err)
	managerID := uuid.New()
	return &employee.Employee{
		ID:           uuid.New(),
		Name:         "Budi",
		Email:        "budi@example.com",
		PasswordHash: hash,
		Role:         "employee",
		HourlyWage:   decimal.NewFromInt(20),
		ManagerID:    &managerID,
	}
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	tokens := token.NewManager("test-secret", time.Hour)
	service := auth.NewService(mockRepo, tokens)
	ctx := context.Background()

	empl := newEmployee(t, "password123")

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "budi@example.com").
			Return(empl, nil)

		resp, err := service.Login(ctx, "  Budi@Example.com ", "password123")

		assert.NoError(t, err)
		assert.Equal(t, empl.ID.String(), resp.User.ID)
		assert.Equal(t, "employee", resp.User.Role)
		assert.Equal(t, 20.0, resp.User.HourlyWage)
		assert.Equal(t, empl.ManagerID.String(), resp.User.ManagerID)

		claims, err := tokens.Parse(resp.AccessToken, token.TypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, empl.ID.String(), claims.EmployeeID)
		assert.Equal(t, "employee", claims.Role)

		_, err = tokens.Parse(resp.RefreshToken, token.TypeRefresh)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, empl.Email).
			Return(empl, nil)

		_, err := service.Login(ctx, empl.Email, "nope")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, "ghost@example.com", "password123")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	tokens := token.NewManager("test-secret", time.Hour)
	service := auth.NewService(mockRepo, tokens)
	ctx := context.Background()

	empl := newEmployee(t, "password123")
	empl.Role = "manager"

	t.Run("reissues with current role", func(t *testing.T) {
		refresh, err := tokens.Issue(empl.ID.String(), "employee", token.TypeRefresh)
		assert.NoError(t, err)

		mockRepo.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)

		resp, err := service.Refresh(ctx, refresh)

		assert.NoError(t, err)
		claims, err := tokens.Parse(resp.AccessToken, token.TypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		access, _ := tokens.Issue(empl.ID.String(), "employee", token.TypeAccess)

		_, err := service.Refresh(ctx, access)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo, token.NewManager("s", time.Hour))
	ctx := context.Background()

	empl := newEmployee(t, "password123")

	mockRepo.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)
	resp, err := service.Me(ctx, empl.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, "budi@example.com", resp.Email)

	_, err = service.Me(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)

	missing := uuid.NewString()
	mockRepo.EXPECT().FindByID(ctx, missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = service.Me(ctx, missing)
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
