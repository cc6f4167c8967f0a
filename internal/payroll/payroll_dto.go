package payroll

// MonthlyStatement is the breakdown netted against the month's leave
// deductions.
type MonthlyStatement struct {
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	EmployeeNumber string    `json:"employee_number"`
	Month          string    `json:"month"`
	Breakdown      Breakdown `json:"breakdown"`

	LeaveDeductions float64 `json:"leave_deductions"`
	PayableAmount   float64 `json:"payable_amount"`
}

type PayslipRequestedResponse struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}
