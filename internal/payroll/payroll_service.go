package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"astramaie-backoffice/internal/employee"
	employeeerrors "astramaie-backoffice/internal/employee/errors"
	"astramaie-backoffice/internal/events"
	"astramaie-backoffice/internal/messaging/kafka"
	"astramaie-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const statementCacheTTL = time.Hour

// EmployeeLookup is satisfied by employee.Repository.
type EmployeeLookup interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// DeductionSource is satisfied by deduction.Repository.
type DeductionSource interface {
	SumByEmployeeMonth(ctx context.Context, employeeID, month string) (float64, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetBreakdown(ctx context.Context, employeeID string, asOf time.Time) (MonthlyStatement, error)
	RequestPayslip(ctx context.Context, employeeID, requestedBy string) (PayslipRequestedResponse, error)
	InvalidateStatement(ctx context.Context, employeeID, month string) error
}

type service struct {
	employees  EmployeeLookup
	deductions DeductionSource
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	sf         *singleflight.Group
	logger     *zap.Logger
}

func NewService(
	employees EmployeeLookup,
	deductions DeductionSource,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		employees:  employees,
		deductions: deductions,
		outbox:     outbox,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

func statementCacheKey(employeeID, month string) string {
	return fmt.Sprintf("payroll:statement:%s:%s", employeeID, month)
}

func (s *service) GetBreakdown(ctx context.Context, employeeID string, asOf time.Time) (MonthlyStatement, error) {
	month := asOf.Format("2006-01")
	key := statementCacheKey(employeeID, month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var stmt MonthlyStatement
			if json.Unmarshal([]byte(cached), &stmt) == nil {
				return stmt, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		empl, err := s.employees.FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, employeeerrors.ErrEmployeeNotFound
			}
			return nil, err
		}

		salary, err := empl.BasicSalary()
		if err != nil {
			return nil, err
		}

		breakdown, err := Compute(salary, empl.JoiningDate, asOf)
		if err != nil {
			return nil, err
		}

		leaveDeductions, err := s.deductions.SumByEmployeeMonth(ctx, employeeID, month)
		if err != nil {
			s.logger.Error("payroll deduction lookup failed",
				zap.String("employee_id", employeeID),
				zap.String("month", month),
				zap.Error(err),
			)
			return nil, err
		}

		stmt := MonthlyStatement{
			EmployeeID:      empl.ID.String(),
			EmployeeName:    empl.FullName,
			EmployeeNumber:  empl.EmployeeNumber,
			Month:           month,
			Breakdown:       breakdown,
			LeaveDeductions: leaveDeductions,
			PayableAmount:   math.Round((breakdown.NetSalary-leaveDeductions)*100) / 100,
		}

		if s.rdb != nil {
			if data, err := json.Marshal(stmt); err == nil {
				s.rdb.Set(ctx, key, data, statementCacheTTL)
			}
		}

		return stmt, nil
	})
	if err != nil {
		return MonthlyStatement{}, err
	}

	return v.(MonthlyStatement), nil
}

// RequestPayslip queues asynchronous payslip generation; the document
// consumer picks the event up.
func (s *service) RequestPayslip(ctx context.Context, employeeID, requestedBy string) (PayslipRequestedResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipRequestedResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return PayslipRequestedResponse{}, err
	}

	event := events.DocumentRequestedEvent{
		EventType:   "document.requested",
		TemplateID:  "payslip",
		EmployeeID:  employeeID,
		RequestedBy: requestedBy,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return PayslipRequestedResponse{}, err
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "document",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.DocumentRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue payslip request failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PayslipRequestedResponse{}, err
	}

	s.logger.Info("payslip generation queued",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	return PayslipRequestedResponse{EmployeeID: employeeID, Status: "queued"}, nil
}

func (s *service) InvalidateStatement(ctx context.Context, employeeID, month string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, statementCacheKey(employeeID, month)).Err()
}
