package payroll

import (
	"math"
	"time"

	"astramaie-backoffice/internal/calendar"
	payrollerrors "astramaie-backoffice/internal/payroll/errors"
)

const (
	allowanceRate = 0.20
	// Composite withholding rate standing in for provident fund plus tax.
	deductionRate = 0.113
	taxRate       = 0.10
)

type Breakdown struct {
	BasicSalary  float64 `json:"basic_salary"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"net_salary"`
	MonthsWorked int     `json:"months_worked"`
	YTDEarnings  float64 `json:"ytd_earnings"`
	TaxDeducted  float64 `json:"tax_deducted"`
}

// Compute derives the payroll breakdown for a salary and tenure. All
// rounding is to the nearest whole currency unit.
func Compute(basicSalary float64, joiningDate, asOf time.Time) (Breakdown, error) {
	if basicSalary <= 0 {
		return Breakdown{}, payrollerrors.ErrInvalidSalary
	}

	joiningDate = calendar.NormalizeDate(joiningDate)
	asOf = calendar.NormalizeDate(asOf)
	if asOf.Before(joiningDate) {
		return Breakdown{}, payrollerrors.ErrInvalidDate
	}

	allowances := math.Round(basicSalary * allowanceRate)
	deductions := math.Round(basicSalary * deductionRate)
	net := basicSalary + allowances - deductions

	months := (asOf.Year()-joiningDate.Year())*12 + int(asOf.Month()) - int(joiningDate.Month()) + 1
	if months < 1 {
		months = 1
	}

	ytd := math.Round(net * float64(months))

	return Breakdown{
		BasicSalary:  basicSalary,
		Allowances:   allowances,
		Deductions:   deductions,
		NetSalary:    net,
		MonthsWorked: months,
		YTDEarnings:  ytd,
		TaxDeducted:  math.Round(ytd * taxRate),
	}, nil
}
