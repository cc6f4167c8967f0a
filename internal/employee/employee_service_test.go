package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"astramaie-backoffice/internal/employee"
	employeeerrors "astramaie-backoffice/internal/employee/errors"
	"astramaie-backoffice/internal/messaging/kafka"

	employeeMock "astramaie-backoffice/internal/employee/mock"
	kafkaMock "astramaie-backoffice/internal/messaging/kafka/mock"
	counterMock "astramaie-backoffice/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redisMock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:    "Asha Nair",
		Email:       "asha.nair@example.com",
		Department:  "engineering",
		Role:        "employee",
		Salary:      "75000",
		JoiningDate: "2023-01-15",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - generates employee number and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		deps.repo.EXPECT().
			ExistsByEmail(ctx, req.Email).
			Return(false, nil)

		deps.counter.EXPECT().
			GetNextValue(ctx, "employee_number").
			Return(int64(42), nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-0042", e.EmployeeNumber)
				assert.Equal(t, req.FullName, e.FullName)
				assert.Equal(t, req.Email, e.Email)
				assert.NotEqual(t, "", e.ID.String())
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "employee.created", ev.EventType)
				assert.Equal(t, "employee", ev.AggregateType)
				assert.Equal(t, kafka.OutboxStatusPending, ev.Status)

				var payload map[string]any
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, ev.AggregateID, payload["employee_id"])
				return nil
			})

		deps.redisMock.ExpectDel("employees:options").SetVal(1)

		resp, err := deps.service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "EMP-0042", resp.EmployeeNumber)
		assert.Equal(t, "2023-01-15", resp.JoiningDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects malformed joining date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.JoiningDate = "15-01-2023"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})

	t.Run("rejects non positive salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Salary = "0"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalary)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		deps.repo.EXPECT().
			ExistsByEmail(ctx, req.Email).
			Return(true, nil)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("rolls back when outbox write fails", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		deps.repo.EXPECT().ExistsByEmail(ctx, req.Email).Return(false, nil)
		deps.counter.EXPECT().GetNextValue(ctx, "employee_number").Return(int64(7), nil)

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox insert failed"))

		_, err := deps.service.Create(ctx, req)
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps missing record to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, "missing-id").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, "missing-id")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from cache when warm", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []employee.EmployeeResponse{
			{ID: "id-1", EmployeeNumber: "EMP-0001", FullName: "Asha Nair"},
		}
		data, err := json.Marshal(cached)
		assert.NoError(t, err)

		deps.redisMock.ExpectGet("employees:options").SetVal(string(data))

		resp, err := deps.service.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("falls back to repository on cache miss", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet("employees:options").RedisNil()

		deps.repo.EXPECT().
			FindOptions(ctx).
			Return([]employee.Employee{{FullName: "Asha Nair", EmployeeNumber: "EMP-0001"}}, nil)

		resp, err := deps.service.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "EMP-0001", resp[0].EmployeeNumber)
	})
}
