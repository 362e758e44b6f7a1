package rbac

import "go-workforce/internal/approval"

const (
	ResourceTimesheet = "timesheet"
	ResourceLeave     = "leave"
	ResourceEmployee  = "employee"
	ResourceTeam      = "team"
	ResourceDashboard = "dashboard"
	ResourcePayroll   = "payroll"
	ResourceReport    = "report"
)

const (
	ActionClock   = "clock"
	ActionRequest = "request"
	ActionReadOwn = "read_own"
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionManage  = "manage"
	ActionDecide  = "decide"
	ActionProcess = "process"
)

type policy struct {
	role, resource, action string
}

var defaultPolicies = []policy{
	{approval.RoleEmployee, ResourceTimesheet, ActionClock},
	{approval.RoleEmployee, ResourceTimesheet, ActionReadOwn},
	{approval.RoleEmployee, ResourceLeave, ActionRequest},
	{approval.RoleEmployee, ResourceLeave, ActionReadOwn},

	{approval.RoleManager, ResourceTeam, ActionRead},
	{approval.RoleManager, ResourceTeam, ActionManage},
	{approval.RoleManager, ResourceTeam, ActionCreate},
	{approval.RoleManager, ResourceTimesheet, ActionRead},
	{approval.RoleManager, ResourceTimesheet, ActionDecide},
	{approval.RoleManager, ResourceLeave, ActionRead},
	{approval.RoleManager, ResourceLeave, ActionDecide},

	{approval.RoleHR, ResourceEmployee, ActionCreate},
	{approval.RoleHR, ResourceEmployee, ActionRead},
	{approval.RoleHR, ResourceEmployee, ActionUpdate},
	{approval.RoleHR, ResourceTimesheet, ActionRead},
	{approval.RoleHR, ResourceTimesheet, ActionDecide},
	{approval.RoleHR, ResourceLeave, ActionRead},
	{approval.RoleHR, ResourceLeave, ActionDecide},
	{approval.RoleHR, ResourceDashboard, ActionRead},
	{approval.RoleHR, ResourcePayroll, ActionProcess},
	{approval.RoleHR, ResourcePayroll, ActionRead},
	{approval.RoleHR, ResourceReport, ActionRead},
}

// manager and hr can do everything an employee can.
var roleInheritance = [][2]string{
	{approval.RoleManager, approval.RoleEmployee},
	{approval.RoleHR, approval.RoleEmployee},
}
