package timesheet

type ClockInRequest struct {
	Date     string  `json:"date"`
	Location *string `json:"location" binding:"omitempty,max=255"`
}

type DecisionRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type TimeEntryResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	ClockIn       *string `json:"clock_in,omitempty"`
	ClockOut      *string `json:"clock_out,omitempty"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        string  `json:"status"`
	Location      *string `json:"location,omitempty"`
}
