package events

import "time"

const ApprovalDecidedTopic = "workforce.approval.decided.v1"

const (
	EventTimesheetDecided = "timesheet_decided"
	EventLeaveDecided     = "leave_decided"
)

// ApprovalDecidedEvent is emitted for timesheet and leave decisions alike.
type ApprovalDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	SubjectID  string    `json:"subject_id"`
	EmployeeID string    `json:"employee_id"`
	ApproverID string    `json:"approver_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
