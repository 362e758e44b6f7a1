package rbac

import (
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	PermissionsFor(role string) (RolePermissionsResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the built-in role policies into enforcer.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.loadPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicies() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, p := range defaultPolicies {
		if _, err := s.enforcer.AddPolicy(p.role, p.resource, p.action); err != nil {
			return err
		}
	}
	for _, g := range roleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policies loaded",
		zap.Int("policies", len(defaultPolicies)),
		zap.Int("groupings", len(roleInheritance)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	if !allowed {
		s.logger.Debug("rbac enforce denied",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

func (s *service) PermissionsFor(role string) (RolePermissionsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return RolePermissionsResponse{}, err
	}

	resp := RolePermissionsResponse{Role: role, Permissions: make([]PermissionResponse, 0, len(perms))}
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		resp.Permissions = append(resp.Permissions, PermissionResponse{Resource: p[1], Action: p[2]})
	}
	sort.Slice(resp.Permissions, func(i, j int) bool {
		a, b := resp.Permissions[i], resp.Permissions[j]
		if a.Resource != b.Resource {
			return a.Resource < b.Resource
		}
		return a.Action < b.Action
	})
	return resp, nil
}
