package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"astramaie-backoffice/internal/deduction"
	"astramaie-backoffice/internal/employee"
	employeeerrors "astramaie-backoffice/internal/employee/errors"
	"astramaie-backoffice/internal/leave"
	leaveerrors "astramaie-backoffice/internal/leave/errors"
	"astramaie-backoffice/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn            func(tx *sql.Tx) leave.Repository
	createFn            func(ctx context.Context, l *leave.Leave) error
	findAllFn           func(ctx context.Context, status string) ([]leave.Leave, error)
	findByIDFn          func(ctx context.Context, id string) (*leave.Leave, error)
	findByIDForUpdateFn func(ctx context.Context, id string) (*leave.Leave, error)
	updateReviewFn      func(ctx context.Context, l *leave.Leave) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, status string) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindByIDForUpdate(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeLeaveRepository) UpdateReview(ctx context.Context, l *leave.Leave) error {
	if f.updateReviewFn != nil {
		return f.updateReviewFn(ctx, l)
	}
	return nil
}

type fakeEmployeeLookup struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeLookup) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeWorkingDayCounter struct {
	countFn func(ctx context.Context, start, end time.Time) (int, error)
}

func (f *fakeWorkingDayCounter) CountWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	if f.countFn != nil {
		return f.countFn(ctx, start, end)
	}
	return 1, nil
}

type fakeDeductionRepository struct {
	createFn func(ctx context.Context, d *deduction.Deduction) error
}

func (f *fakeDeductionRepository) WithTx(tx *sql.Tx) deduction.Repository {
	return f
}

func (f *fakeDeductionRepository) Create(ctx context.Context, d *deduction.Deduction) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDeductionRepository) FindAll(ctx context.Context, employeeID, month string) ([]deduction.Deduction, error) {
	return nil, nil
}

func (f *fakeDeductionRepository) SumByEmployeeMonth(ctx context.Context, employeeID, month string) (float64, error) {
	return 0, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id, reason string) error {
	return nil
}

type fakeStatementInvalidator struct {
	invalidateFn func(ctx context.Context, employeeID, month string) error
}

func (f *fakeStatementInvalidator) InvalidateStatement(ctx context.Context, employeeID, month string) error {
	if f.invalidateFn != nil {
		return f.invalidateFn(ctx, employeeID, month)
	}
	return nil
}

type leaveServiceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     leave.Service
	repo        *fakeLeaveRepository
	employees   *fakeEmployeeLookup
	workingDays *fakeWorkingDayCounter
	deductions  *fakeDeductionRepository
	outbox      *fakeOutboxRepository
	statements  *fakeStatementInvalidator
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	employees := &fakeEmployeeLookup{}
	workingDays := &fakeWorkingDayCounter{}
	deductions := &fakeDeductionRepository{}
	outbox := &fakeOutboxRepository{}
	statements := &fakeStatementInvalidator{}

	svc := leave.NewService(db, repo, employees, workingDays, deductions, outbox, statements)

	return &leaveServiceDeps{
		db:          db,
		sqlMock:     sqlMock,
		service:     svc,
		repo:        repo,
		employees:   employees,
		workingDays: workingDays,
		deductions:  deductions,
		outbox:      outbox,
		statements:  statements,
	}
}

func testEmployee(id uuid.UUID) *employee.Employee {
	return &employee.Employee{
		ID:          id,
		FullName:    "Asha Nair",
		Email:       "asha.nair@example.com",
		Salary:      "62000",
		JoiningDate: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func pendingLeave(id, employeeID uuid.UUID) *leave.Leave {
	return &leave.Leave{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: "Asha Nair",
		StartDate:    time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, time.January, 22, 0, 0, 0, 0, time.UTC),
		Reason:       "family event",
		Type:         leave.TypePersonal,
		WorkingDays:  3,
		Status:       leave.StatusPending,
	}
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()

	validRequest := func(employeeID uuid.UUID) leave.SubmitLeaveRequest {
		return leave.SubmitLeaveRequest{
			EmployeeID: employeeID.String(),
			StartDate:  "2025-01-20",
			EndDate:    "2025-01-22",
			Reason:     "family event",
			Type:       "personal",
		}
	}

	t.Run("success - freezes working days at submit", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New()
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return testEmployee(employeeID), nil
		}
		deps.workingDays.countFn = func(ctx context.Context, start, end time.Time) (int, error) {
			return 3, nil
		}

		var created *leave.Leave
		deps.repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			created = l
			return nil
		}

		resp, err := deps.service.Submit(ctx, validRequest(employeeID))
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.WorkingDays)
		assert.Nil(t, resp.ReviewedAt)
		assert.NotNil(t, created)
		assert.Equal(t, "Asha Nair", created.EmployeeName)
	})

	t.Run("rejects a period with no working days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New()
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return testEmployee(employeeID), nil
		}
		deps.workingDays.countFn = func(ctx context.Context, start, end time.Time) (int, error) {
			return 0, nil
		}

		req := validRequest(employeeID)
		req.StartDate = "2025-01-18"
		req.EndDate = "2025-01-19"

		_, err := deps.service.Submit(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrNoWorkingDays)
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := validRequest(uuid.New())
		req.Reason = "   "

		_, err := deps.service.Submit(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrReasonRequired)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := validRequest(uuid.New())
		req.StartDate = "2025-01-22"
		req.EndDate = "2025-01-20"

		_, err := deps.service.Submit(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("rejects unknown leave type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := validRequest(uuid.New())
		req.Type = "sabbatical"

		_, err := deps.service.Submit(ctx, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, validRequest(uuid.New()))
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestLeaveService_Review(t *testing.T) {
	ctx := context.Background()

	t.Run("approval derives the deduction in the same transaction", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		employeeID := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return pendingLeave(leaveID, employeeID), nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return testEmployee(employeeID), nil
		}

		var storedDeduction *deduction.Deduction
		deps.deductions.createFn = func(ctx context.Context, d *deduction.Deduction) error {
			storedDeduction = d
			return nil
		}

		var reviewed *leave.Leave
		deps.repo.updateReviewFn = func(ctx context.Context, l *leave.Leave) error {
			reviewed = l
			return nil
		}

		var queued kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			queued = event
			return nil
		}

		var invalidatedMonth string
		deps.statements.invalidateFn = func(ctx context.Context, employeeID, month string) error {
			invalidatedMonth = month
			return nil
		}

		notes := "approved, enjoy"
		resp, err := deps.service.Review(ctx, leaveID.String(), leave.ReviewLeaveRequest{
			Decision:   "APPROVED",
			AdminNotes: &notes,
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ReviewedAt)

		// 62000 over January's 31 days, 3 working days.
		assert.NotNil(t, storedDeduction)
		assert.Equal(t, 6000.0, storedDeduction.Amount)
		assert.Equal(t, "2025-01", storedDeduction.Month)
		assert.Equal(t, leaveID, storedDeduction.LeaveID)

		assert.NotNil(t, reviewed)
		assert.NotNil(t, reviewed.ReviewedAt)

		assert.Equal(t, "leave.reviewed", queued.EventType)
		assert.Equal(t, "2025-01", invalidatedMonth)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejection records no deduction", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		employeeID := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return pendingLeave(leaveID, employeeID), nil
		}

		deductionWritten := false
		deps.deductions.createFn = func(ctx context.Context, d *deduction.Deduction) error {
			deductionWritten = true
			return nil
		}

		resp, err := deps.service.Review(ctx, leaveID.String(), leave.ReviewLeaveRequest{
			Decision: "REJECTED",
		})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.False(t, deductionWritten)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second review fails and leaves status untouched", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		employeeID := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			l := pendingLeave(leaveID, employeeID)
			l.Status = leave.StatusApproved
			return l, nil
		}

		_, err := deps.service.Review(ctx, leaveID.String(), leave.ReviewLeaveRequest{
			Decision: "REJECTED",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyReviewed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("deduction failure rolls the review back", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		leaveID := uuid.New()
		employeeID := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDForUpdateFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return pendingLeave(leaveID, employeeID), nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return testEmployee(employeeID), nil
		}
		deps.deductions.createFn = func(ctx context.Context, d *deduction.Deduction) error {
			return errors.New("deduction insert failed")
		}

		updateCalled := false
		deps.repo.updateReviewFn = func(ctx context.Context, l *leave.Leave) error {
			updateCalled = true
			return nil
		}

		_, err := deps.service.Review(ctx, leaveID.String(), leave.ReviewLeaveRequest{
			Decision: "APPROVED",
		})
		assert.Error(t, err)
		assert.False(t, updateCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Review(ctx, uuid.NewString(), leave.ReviewLeaveRequest{
			Decision: "APPROVED",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("rejects unknown decision", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Review(ctx, uuid.NewString(), leave.ReviewLeaveRequest{
			Decision: "MAYBE",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
	})
}

func TestLeaveService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the status filter", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		var gotStatus string
		deps.repo.findAllFn = func(ctx context.Context, status string) ([]leave.Leave, error) {
			gotStatus = status
			return nil, nil
		}

		_, err := deps.service.GetAll(ctx, leave.ListLeavesQuery{Status: "pending"})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, gotStatus)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, leave.ListLeavesQuery{Status: "ON_HOLD"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)
	})
}
