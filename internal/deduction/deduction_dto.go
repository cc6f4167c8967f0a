package deduction

type ListDeductionsQuery struct {
	EmployeeID string `form:"employee_id"`
	Month      string `form:"month"`
}

type DeductionResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveID    string  `json:"leave_id"`
	Month      string  `json:"month"`
	Days       int     `json:"days"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}
