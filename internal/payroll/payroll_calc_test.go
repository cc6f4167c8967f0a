package payroll_test

import (
	"testing"
	"time"

	"astramaie-backoffice/internal/payroll"
	payrollerrors "astramaie-backoffice/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("one year of tenure", func(t *testing.T) {
		b, err := payroll.Compute(75000, day(2023, time.January, 15), day(2024, time.January, 15))
		assert.NoError(t, err)
		assert.Equal(t, 15000.0, b.Allowances)
		assert.Equal(t, 8475.0, b.Deductions)
		assert.Equal(t, 81525.0, b.NetSalary)
		assert.Equal(t, 13, b.MonthsWorked)
		assert.Equal(t, 1059825.0, b.YTDEarnings)
		assert.Equal(t, 105983.0, b.TaxDeducted)
	})

	t.Run("joining month counts as one month worked", func(t *testing.T) {
		b, err := payroll.Compute(50000, day(2025, time.March, 1), day(2025, time.March, 20))
		assert.NoError(t, err)
		assert.Equal(t, 1, b.MonthsWorked)
	})

	t.Run("rounds composite rates to whole units", func(t *testing.T) {
		// 33333 * 0.113 = 3766.629 -> 3767; 33333 * 0.20 = 6666.6 -> 6667
		b, err := payroll.Compute(33333, day(2025, time.January, 1), day(2025, time.January, 31))
		assert.NoError(t, err)
		assert.Equal(t, 6667.0, b.Allowances)
		assert.Equal(t, 3767.0, b.Deductions)
		assert.Equal(t, 36233.0, b.NetSalary)
	})

	t.Run("rejects non positive salary", func(t *testing.T) {
		_, err := payroll.Compute(0, day(2023, time.January, 15), day(2024, time.January, 15))
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidSalary)

		_, err = payroll.Compute(-1, day(2023, time.January, 15), day(2024, time.January, 15))
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidSalary)
	})

	t.Run("rejects as-of before joining", func(t *testing.T) {
		_, err := payroll.Compute(75000, day(2024, time.January, 15), day(2023, time.January, 15))
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDate)
	})

	t.Run("as-of on the joining day is valid", func(t *testing.T) {
		b, err := payroll.Compute(75000, day(2023, time.January, 15), day(2023, time.January, 15))
		assert.NoError(t, err)
		assert.Equal(t, 1, b.MonthsWorked)
	})
}
