package document

type GenerateDocumentRequest struct {
	Template    string
	EmployeeID  string
	GeneratedOn string
	AsPDF       bool
}

type DocumentResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Template    string `json:"template"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
	GeneratedOn string `json:"generated_on"`
	CreatedAt   string `json:"created_at"`
}
