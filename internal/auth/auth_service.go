package auth

import (
	"context"
	"strings"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/auth/token"
	"go-workforce/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Me(ctx context.Context, employeeID string) (AuthResponse, error)
}

type service struct {
	employees employee.Repository
	tokens    *token.Manager
	logger    *zap.Logger
}

func NewService(employees employee.Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	empl, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login unknown email", zap.String("email", email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("employee_id", empl.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.issue(empl)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("employee_id", empl.ID.String()),
		zap.String("role", empl.Role),
	)
	return resp, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (LoginResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	// Role may have changed since the refresh token was issued.
	empl, err := s.employees.FindByID(ctx, claims.EmployeeID)
	if err != nil {
		return LoginResponse{}, autherrors.ErrUserNotFound
	}

	return s.issue(empl)
}

func (s *service) Me(ctx context.Context, employeeID string) (AuthResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}

	return mapToResponse(empl), nil
}

func (s *service) issue(empl *employee.Employee) (LoginResponse, error) {
	access, err := s.tokens.Issue(empl.ID.String(), empl.Role, token.TypeAccess)
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.tokens.Issue(empl.ID.String(), empl.Role, token.TypeRefresh)
	if err != nil {
		s.logger.Error("issue refresh token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		User:         mapToResponse(empl),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func mapToResponse(empl *employee.Employee) AuthResponse {
	wage, _ := empl.HourlyWage.Float64()
	resp := AuthResponse{
		ID:         empl.ID.String(),
		Name:       empl.Name,
		Email:      empl.Email,
		Role:       empl.Role,
		HourlyWage: wage,
	}
	if empl.ManagerID != nil {
		resp.ManagerID = empl.ManagerID.String()
	}
	return resp
}
