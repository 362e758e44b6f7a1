package events

import "time"

const PayrollProcessedTopic = "workforce.payroll.processed.v1"

const EventPayrollProcessed = "payroll_processed"

type PayrollProcessedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Period     string    `json:"period"`
	TotalPay   string    `json:"total_pay"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DashboardTopics are the topics whose events change the dashboard stats.
var DashboardTopics = []string{
	EmployeeChangedTopic,
	ApprovalDecidedTopic,
	PayrollProcessedTopic,
	RequestSubmittedTopic,
}
