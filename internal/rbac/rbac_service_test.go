package rbac_test

import (
	"testing"

	"go-workforce/internal/approval"
	"go-workforce/internal/rbac"
	"go-workforce/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		role, resource, action string
		allowed                bool
	}{
		{approval.RoleEmployee, rbac.ResourceTimesheet, rbac.ActionClock, true},
		{approval.RoleEmployee, rbac.ResourceTimesheet, rbac.ActionDecide, false},
		{approval.RoleEmployee, rbac.ResourcePayroll, rbac.ActionProcess, false},
		{approval.RoleManager, rbac.ResourceTimesheet, rbac.ActionClock, true},
		{approval.RoleManager, rbac.ResourceTimesheet, rbac.ActionDecide, true},
		{approval.RoleManager, rbac.ResourceDashboard, rbac.ActionRead, false},
		{approval.RoleManager, rbac.ResourceEmployee, rbac.ActionCreate, false},
		{approval.RoleHR, rbac.ResourcePayroll, rbac.ActionProcess, true},
		{approval.RoleHR, rbac.ResourceLeave, rbac.ActionRequest, true},
		{approval.RoleHR, rbac.ResourceTeam, rbac.ActionManage, false},
		{"", rbac.ResourceTimesheet, rbac.ActionClock, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(rbac.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRBACService_PermissionsFor(t *testing.T) {
	svc := newService(t)

	resp, err := svc.PermissionsFor(approval.RoleManager)

	assert.NoError(t, err)
	assert.Equal(t, approval.RoleManager, resp.Role)
	assert.Contains(t, resp.Permissions, rbac.PermissionResponse{Resource: rbac.ResourceTeam, Action: rbac.ActionManage})
	assert.Contains(t, resp.Permissions, rbac.PermissionResponse{Resource: rbac.ResourceTimesheet, Action: rbac.ActionClock})
	assert.NotContains(t, resp.Permissions, rbac.PermissionResponse{Resource: rbac.ResourcePayroll, Action: rbac.ActionProcess})
}
