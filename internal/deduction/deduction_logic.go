package deduction

import (
	"math"
	"time"

	deductionerrors "astramaie-backoffice/internal/deduction/errors"

	"github.com/google/uuid"
)

// Derive computes the unpaid-leave deduction for an approved leave. The
// per-day rate divides the basic salary by the calendar days of the month
// the leave starts in; a leave spanning a month boundary is attributed
// wholly to its start month.
func Derive(employeeID, leaveID uuid.UUID, basicSalary float64, startDate time.Time, workingDays int) (*Deduction, error) {
	if basicSalary <= 0 {
		return nil, deductionerrors.ErrInvalidSalary
	}

	perDay := basicSalary / float64(daysInMonth(startDate))
	amount := round2(perDay * float64(workingDays))

	return &Deduction{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveID:    leaveID,
		Month:      startDate.Format("2006-01"),
		Days:       workingDays,
		Amount:     amount,
	}, nil
}

func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
