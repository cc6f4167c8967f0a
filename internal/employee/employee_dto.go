package employee

type CreateEmployeeRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Department  string `json:"department" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=admin employee"`
	Salary      string `json:"salary" binding:"required"`
	JoiningDate string `json:"joining_date" binding:"required"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Role           string `json:"role"`
	Salary         string `json:"salary"`
	JoiningDate    string `json:"joining_date"`
}
