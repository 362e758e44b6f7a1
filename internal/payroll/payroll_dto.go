package payroll

type ProcessPayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Period       string `json:"period"`
	BasePay      string `json:"base_pay"`
	OvertimePay  string `json:"overtime_pay"`
	Deductions   string `json:"deductions"`
	TotalPay     string `json:"total_pay"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
