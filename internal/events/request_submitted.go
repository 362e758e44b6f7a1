package events

import "time"

const RequestSubmittedTopic = "workforce.request.submitted.v1"

const (
	EventLeaveRequested  = "leave_requested"
	EventTimesheetOpened = "timesheet_opened"
)

// RequestSubmittedEvent marks a new item entering the pending queue.
type RequestSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	SubjectID  string    `json:"subject_id"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
