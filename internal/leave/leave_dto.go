package leave

type CreateLeaveRequest struct {
	Type      string  `json:"type" binding:"required,max=50"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Reason    *string `json:"reason"`
}

type DecisionRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
