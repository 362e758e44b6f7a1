package employee

type CreateEmployeeRequest struct {
	Name       string   `json:"name" binding:"required,max=150"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Role       string   `json:"role" binding:"omitempty,oneof=employee manager hr"`
	HourlyWage *float64 `json:"hourly_wage" binding:"omitempty,gte=0"`
	ManagerID  *string  `json:"manager_id" binding:"omitempty,uuid"`
}

type UpdateEmployeeRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=1,max=150"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	Password   *string  `json:"password" binding:"omitempty,min=6"`
	HourlyWage *float64 `json:"hourly_wage" binding:"omitempty,gte=0"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	HourlyWage float64 `json:"hourly_wage"`
	ManagerID  string  `json:"manager_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
