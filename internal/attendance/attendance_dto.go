package attendance

type CheckInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Timestamp  string `json:"timestamp"`
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Timestamp  string `json:"timestamp"`
}

type ListAttendanceQuery struct {
	EmployeeID string `form:"employee_id"`
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	Hours      string  `json:"hours,omitempty"`
	Status     string  `json:"status"`
}

type AttendanceRateResponse struct {
	EmployeeID string  `json:"employee_id"`
	AsOf       string  `json:"as_of"`
	Rate       float64 `json:"rate"`
}
