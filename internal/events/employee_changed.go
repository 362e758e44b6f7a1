package events

import "time"

const EmployeeChangedTopic = "workforce.employee.changed.v1"

const (
	EventEmployeeCreated = "employee_created"
	EventEmployeeUpdated = "employee_updated"
	EventTeamChanged     = "team_changed"
)

type EmployeeChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Role       string    `json:"role"`
	ManagerID  string    `json:"manager_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
