package dashboard

import (
	"go-workforce/internal/leave"
	"go-workforce/internal/timesheet"
)

type StatsResponse struct {
	TotalEmployees  int64  `json:"totalEmployees"`
	PendingRequests int64  `json:"pendingRequests"`
	TotalPayroll    string `json:"totalPayroll"`
	ActiveReports   int64  `json:"activeReports"`
	Period          string `json:"period"`
	Estimated       bool   `json:"estimated"`
}

type PendingRequestsResponse struct {
	Leaves     []leave.LeaveResponse         `json:"leaves"`
	Timesheets []timesheet.TimeEntryResponse `json:"timesheets"`
}
