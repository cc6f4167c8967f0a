package document

import (
	"bytes"
	"fmt"
	"math"
	"text/template"

	documenterrors "astramaie-backoffice/internal/document/errors"
	"astramaie-backoffice/internal/numwords"
	"astramaie-backoffice/internal/payroll"
)

// RenderData carries everything a template may reference. GeneratedOn is
// the only date that appears in output; rendering the same data twice
// yields byte-identical documents.
type RenderData struct {
	Employee    EmployeeData
	Payroll     payroll.Breakdown
	NetInWords  string
	GeneratedOn string
}

type EmployeeData struct {
	Number      string
	Name        string
	Email       string
	Department  string
	Role        string
	JoiningDate string
}

const payslipTemplate = `ASTRAMAIE AUTOMATION PVT. LTD.
PAY SLIP

Employee   : {{.Employee.Name}} ({{.Employee.Number}})
Department : {{.Employee.Department}}
Joined     : {{.Employee.JoiningDate}}

Basic Salary      : {{money .Payroll.BasicSalary}}
Allowances (20%)  : {{money .Payroll.Allowances}}
Deductions        : {{money .Payroll.Deductions}}
Net Salary        : {{money .Payroll.NetSalary}}
YTD Earnings      : {{money .Payroll.YTDEarnings}}
Tax Deducted      : {{money .Payroll.TaxDeducted}}

Net amount in words: {{.NetInWords}} Rupees Only

Generated on: {{.GeneratedOn}}
`

const contractTemplate = `EMPLOYMENT CONTRACT

This agreement is made between Astramaie Automation Pvt. Ltd. (the
"Company") and {{.Employee.Name}} (the "Employee"), employee number
{{.Employee.Number}}.

The Employee is engaged in the {{.Employee.Department}} department in the
role of {{.Employee.Role}}, with effect from {{.Employee.JoiningDate}}.

The Employee's basic monthly salary is {{money .Payroll.BasicSalary}}
({{words .Payroll.BasicSalary}} Rupees), plus allowances per company
policy.

Generated on: {{.GeneratedOn}}
`

const taxformTemplate = `INCOME TAX COMPUTATION STATEMENT

Assessee       : {{.Employee.Name}} ({{.Employee.Number}})
Employer       : Astramaie Automation Pvt. Ltd.

Months Worked  : {{.Payroll.MonthsWorked}}
YTD Earnings   : {{money .Payroll.YTDEarnings}}
Tax Deducted   : {{money .Payroll.TaxDeducted}}
Tax in words   : {{words .Payroll.TaxDeducted}} Rupees Only

Generated on: {{.GeneratedOn}}
`

const insuranceTemplate = `GROUP INSURANCE POLICY CERTIFICATE

Insured        : {{.Employee.Name}} ({{.Employee.Number}})
Department     : {{.Employee.Department}}
Member since   : {{.Employee.JoiningDate}}

Sum assured is three times annual net salary:
Annual Net     : {{money .Payroll.YTDEarnings}}

Generated on: {{.GeneratedOn}}
`

const idcardTemplate = `ASTRAMAIE AUTOMATION PVT. LTD.
EMPLOYEE IDENTITY CARD

{{.Employee.Name}}
{{.Employee.Number}} | {{.Employee.Department}} | {{.Employee.Role}}
{{.Employee.Email}}

Issued: {{.GeneratedOn}}
`

var templates = template.Must(
	template.New("documents").Funcs(template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("Rs. %.2f", v)
		},
		"words": func(v float64) string {
			w, err := numwords.ToWords(int64(math.Round(v)))
			if err != nil {
				return ""
			}
			return w
		},
	}).Parse(
		`{{define "payslip"}}` + payslipTemplate + `{{end}}` +
			`{{define "contract"}}` + contractTemplate + `{{end}}` +
			`{{define "taxform"}}` + taxformTemplate + `{{end}}` +
			`{{define "insurance"}}` + insuranceTemplate + `{{end}}` +
			`{{define "idcard"}}` + idcardTemplate + `{{end}}`,
	),
)

func KnownTemplate(id string) bool {
	switch id {
	case TemplatePayslip, TemplateContract, TemplateTaxForm, TemplateInsurance, TemplateIDCard:
		return true
	}
	return false
}

// Render produces the document text for a template id. Identical data
// renders to identical bytes.
func Render(templateID string, data RenderData) ([]byte, error) {
	if !KnownTemplate(templateID) {
		return nil, documenterrors.ErrUnknownTemplate
	}

	if data.NetInWords == "" {
		w, err := numwords.ToWords(int64(math.Round(data.Payroll.NetSalary)))
		if err != nil {
			return nil, err
		}
		data.NetInWords = w
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, templateID, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
