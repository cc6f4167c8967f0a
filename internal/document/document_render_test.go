package document_test

import (
	"testing"

	"astramaie-backoffice/internal/document"
	documenterrors "astramaie-backoffice/internal/document/errors"
	"astramaie-backoffice/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func sampleRenderData() document.RenderData {
	return document.RenderData{
		Employee: document.EmployeeData{
			Number:      "EMP-0007",
			Name:        "Asha Nair",
			Email:       "asha.nair@example.com",
			Department:  "engineering",
			Role:        "employee",
			JoiningDate: "2023-01-15",
		},
		Payroll: payroll.Breakdown{
			BasicSalary:  75000,
			Allowances:   15000,
			Deductions:   8475,
			NetSalary:    81525,
			MonthsWorked: 13,
			YTDEarnings:  1059825,
			TaxDeducted:  105983,
		},
		GeneratedOn: "2024-01-15",
	}
}

func TestRender(t *testing.T) {
	t.Run("identical input renders identical bytes", func(t *testing.T) {
		data := sampleRenderData()

		first, err := document.Render("payslip", data)
		assert.NoError(t, err)
		second, err := document.Render("payslip", data)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("payslip carries the net amount in words", func(t *testing.T) {
		out, err := document.Render("payslip", sampleRenderData())
		assert.NoError(t, err)
		assert.Contains(t, string(out), "Eighty One Thousand Five Hundred Twenty Five Rupees Only")
		assert.Contains(t, string(out), "Generated on: 2024-01-15")
	})

	t.Run("all known templates render", func(t *testing.T) {
		for _, id := range []string{"payslip", "contract", "taxform", "insurance", "idcard"} {
			out, err := document.Render(id, sampleRenderData())
			assert.NoError(t, err, id)
			assert.NotEmpty(t, out, id)
		}
	})

	t.Run("unknown template fails", func(t *testing.T) {
		_, err := document.Render("visa-letter", sampleRenderData())
		assert.ErrorIs(t, err, documenterrors.ErrUnknownTemplate)
	})
}

func TestPayslipPDF(t *testing.T) {
	t.Run("reproducible bytes for identical input", func(t *testing.T) {
		data := sampleRenderData()

		first, err := document.PayslipPDF(data)
		assert.NoError(t, err)
		second, err := document.PayslipPDF(data)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Contains(t, string(first[:8]), "%PDF")
	})
}
