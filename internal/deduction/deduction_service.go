package deduction

import (
	"context"
	"time"

	deductionerrors "astramaie-backoffice/internal/deduction/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, query ListDeductionsQuery) ([]DeductionResponse, error)
	SumForMonth(ctx context.Context, employeeID, month string) (float64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, query ListDeductionsQuery) ([]DeductionResponse, error) {
	if query.Month != "" {
		if _, err := time.Parse("2006-01", query.Month); err != nil {
			return nil, deductionerrors.ErrInvalidMonth
		}
	}

	deductions, err := s.repo.FindAll(ctx, query.EmployeeID, query.Month)
	if err != nil {
		s.logger.Error("list deductions failed", zap.Error(err))
		return nil, err
	}

	resp := make([]DeductionResponse, len(deductions))
	for i, d := range deductions {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) SumForMonth(ctx context.Context, employeeID, month string) (float64, error) {
	return s.repo.SumByEmployeeMonth(ctx, employeeID, month)
}

func mapToResponse(d Deduction) DeductionResponse {
	return DeductionResponse{
		ID:         d.ID.String(),
		EmployeeID: d.EmployeeID.String(),
		LeaveID:    d.LeaveID.String(),
		Month:      d.Month,
		Days:       d.Days,
		Amount:     d.Amount,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
