package deduction_test

import (
	"testing"
	"time"

	"astramaie-backoffice/internal/deduction"
	deductionerrors "astramaie-backoffice/internal/deduction/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	employeeID := uuid.New()
	leaveID := uuid.New()

	t.Run("per day rate uses calendar days of the start month", func(t *testing.T) {
		// January has 31 days: 62000 / 31 = 2000 per day.
		start := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

		d, err := deduction.Derive(employeeID, leaveID, 62000, start, 3)
		assert.NoError(t, err)
		assert.Equal(t, "2025-01", d.Month)
		assert.Equal(t, 3, d.Days)
		assert.Equal(t, 6000.0, d.Amount)
		assert.Equal(t, employeeID, d.EmployeeID)
		assert.Equal(t, leaveID, d.LeaveID)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		// February 2025 has 28 days: 75000 / 28 = 2678.5714...
		start := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

		d, err := deduction.Derive(employeeID, leaveID, 75000, start, 1)
		assert.NoError(t, err)
		assert.Equal(t, "2025-02", d.Month)
		assert.Equal(t, 2678.57, d.Amount)
	})

	t.Run("leap february counts 29 days", func(t *testing.T) {
		start := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

		d, err := deduction.Derive(employeeID, leaveID, 29000, start, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2000.0, d.Amount)
	})

	t.Run("cross month leave is attributed to the start month", func(t *testing.T) {
		start := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

		d, err := deduction.Derive(employeeID, leaveID, 31000, start, 2)
		assert.NoError(t, err)
		assert.Equal(t, "2025-03", d.Month)
		assert.Equal(t, 2000.0, d.Amount)
	})

	t.Run("rejects non positive salary", func(t *testing.T) {
		start := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

		_, err := deduction.Derive(employeeID, leaveID, 0, start, 3)
		assert.ErrorIs(t, err, deductionerrors.ErrInvalidSalary)

		_, err = deduction.Derive(employeeID, leaveID, -100, start, 3)
		assert.ErrorIs(t, err, deductionerrors.ErrInvalidSalary)
	})
}
