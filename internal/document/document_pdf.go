package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PayslipPDF renders the payslip as a PDF. The creation date embedded in
// the PDF metadata is pinned to the generation date so identical inputs
// produce identical bytes.
func PayslipPDF(data RenderData) ([]byte, error) {
	generated, err := time.Parse("2006-01-02", data.GeneratedOn)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Pay Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", data.Employee.Name, data.Employee.Number))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", data.Employee.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Joined: %s", data.Employee.JoiningDate))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Basic Salary: Rs. %.2f", data.Payroll.BasicSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: Rs. %.2f", data.Payroll.Allowances))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: Rs. %.2f", data.Payroll.Deductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: Rs. %.2f", data.Payroll.NetSalary))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Net amount in words: %s Rupees Only", data.NetInWords), "", "L", false)
	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on: %s", data.GeneratedOn))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
