package leave

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
	Type       string `json:"type" binding:"required"`
}

type ReviewLeaveRequest struct {
	Decision   string  `json:"decision" binding:"required"`
	AdminNotes *string `json:"admin_notes"`
}

type ListLeavesQuery struct {
	Status string `form:"status"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Type         string  `json:"type"`
	WorkingDays  int     `json:"working_days"`
	Status       string  `json:"status"`
	AdminNotes   *string `json:"admin_notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
}
