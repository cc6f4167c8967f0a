package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"astramaie-backoffice/internal/calendar"
	"astramaie-backoffice/internal/deduction"
	"astramaie-backoffice/internal/employee"
	employeeerrors "astramaie-backoffice/internal/employee/errors"
	leaveerrors "astramaie-backoffice/internal/leave/errors"
	"astramaie-backoffice/internal/events"
	"astramaie-backoffice/internal/messaging/kafka"
	"astramaie-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkingDayCounter is the slice of the calendar service a leave request
// needs; calendar.Service satisfies it.
type WorkingDayCounter interface {
	CountWorkingDays(ctx context.Context, start, end time.Time) (int, error)
}

// EmployeeLookup is satisfied by employee.Repository.
type EmployeeLookup interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// StatementInvalidator drops cached payroll statements after an approval
// changes the month's deductions.
type StatementInvalidator interface {
	InvalidateStatement(ctx context.Context, employeeID, month string) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	Review(ctx context.Context, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, query ListLeavesQuery) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   EmployeeLookup
	workingDays WorkingDayCounter
	deductions  deduction.Repository
	outbox      kafka.OutboxRepository
	statements  StatementInvalidator
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeLookup,
	workingDays WorkingDayCounter,
	deductions deduction.Repository,
	outbox kafka.OutboxRepository,
	statements StatementInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		workingDays: workingDays,
		deductions:  deductions,
		outbox:      outbox,
		statements:  statements,
		logger:      l,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	start = calendar.NormalizeDate(start)
	end = calendar.NormalizeDate(end)

	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if strings.TrimSpace(req.Reason) == "" {
		return LeaveResponse{}, leaveerrors.ErrReasonRequired
	}
	if !ValidType(req.Type) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("submit leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	days, err := s.workingDays.CountWorkingDays(ctx, start, end)
	if err != nil {
		s.logger.Error("submit leave working day count failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if days == 0 {
		return LeaveResponse{}, leaveerrors.ErrNoWorkingDays
	}

	l := &Leave{
		ID:           uuid.New(),
		EmployeeID:   empl.ID,
		EmployeeName: empl.FullName,
		StartDate:    start,
		EndDate:      end,
		Reason:       req.Reason,
		Type:         req.Type,
		WorkingDays:  days,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave submitted",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", l.EmployeeID.String()),
		zap.Int("working_days", days),
	)

	return mapToResponse(*l), nil
}

// Review applies the single PENDING -> APPROVED|REJECTED transition. The
// status check, the deduction write and the outbox record share one
// transaction; if any of them fails the request stays PENDING.
func (s *service) Review(ctx context.Context, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	decision := strings.ToUpper(strings.TrimSpace(req.Decision))
	if decision != StatusApproved && decision != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("review leave lock failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	if decision == StatusApproved {
		empl, err := s.employees.FindByID(ctx, l.EmployeeID.String())
		if err != nil {
			s.logger.Error("review leave employee lookup failed", zap.Error(err))
			return LeaveResponse{}, err
		}

		salary, err := empl.BasicSalary()
		if err != nil {
			return LeaveResponse{}, err
		}

		d, err := deduction.Derive(l.EmployeeID, l.ID, salary, l.StartDate, l.WorkingDays)
		if err != nil {
			return LeaveResponse{}, err
		}

		if err := s.deductions.WithTx(tx).Create(ctx, d); err != nil {
			s.logger.Error("review leave deduction persist failed",
				zap.String("leave_id", l.ID.String()),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	now := time.Now().UTC()
	l.Status = decision
	l.AdminNotes = req.AdminNotes
	l.ReviewedAt = &now

	if err := qtx.UpdateReview(ctx, l); err != nil {
		s.logger.Error("review leave update failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveReviewedEvent{
			EventType:  "leave.reviewed",
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			Decision:   decision,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveReviewedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("review leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	if decision == StatusApproved && s.statements != nil {
		month := l.StartDate.Format("2006-01")
		if err := s.statements.InvalidateStatement(ctx, l.EmployeeID.String(), month); err != nil {
			s.logger.Error("invalidate payroll statement failed",
				zap.String("employee_id", l.EmployeeID.String()),
				zap.String("month", month),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("leave reviewed",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("decision", decision),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, query ListLeavesQuery) ([]LeaveResponse, error) {
	status := strings.ToUpper(strings.TrimSpace(query.Status))
	if status != "" && !ValidStatus(status) {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	leaves, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID.String(),
		EmployeeName: l.EmployeeName,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Reason:       l.Reason,
		Type:         l.Type,
		WorkingDays:  l.WorkingDays,
		Status:       l.Status,
		AdminNotes:   l.AdminNotes,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ReviewedAt != nil {
		reviewed := l.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}
