package calendar

import (
	"context"
	"strings"
	"time"

	calendarerrors "astramaie-backoffice/internal/calendar/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	AddHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	RemoveHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	IsWorkingDay(ctx context.Context, date time.Time) (bool, error)
	CountWorkingDays(ctx context.Context, start, end time.Time) (int, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) AddHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return HolidayResponse{}, calendarerrors.ErrNameRequired
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.logger.Warn("add holiday invalid date", zap.String("date", req.Date))
		return HolidayResponse{}, calendarerrors.ErrInvalidDateFormat
	}

	switch req.Category {
	case CategoryFestival, CategoryNational, CategoryCompany:
	default:
		return HolidayResponse{}, calendarerrors.ErrInvalidCategory
	}

	h := &Holiday{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Date:     NormalizeDate(date),
		Category: req.Category,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Error("add holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("holiday added",
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", req.Date),
	)

	return mapToResponse(*h), nil
}

// RemoveHoliday is an idempotent no-op for an unknown id; re-deleting a
// holiday must not fail the calling workflow.
func (s *service) RemoveHoliday(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("remove holiday failed", zap.String("holiday_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("holiday removed", zap.String("holiday_id", id))
	return nil
}

func (s *service) ListHolidays(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapToResponse(h)
	}
	return resp, nil
}

func (s *service) IsWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	day := NormalizeDate(date)
	if isWeekend(day) {
		return false, nil
	}

	holidays, err := s.repo.FindBetween(ctx, day, day)
	if err != nil {
		return false, err
	}

	_, isHoliday := holidaySet(holidays)[day]
	return !isHoliday, nil
}

func (s *service) CountWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	startDay := NormalizeDate(start)
	endDay := NormalizeDate(end)
	if endDay.Before(startDay) {
		return 0, calendarerrors.ErrInvalidRange
	}

	// One range query instead of a lookup per day.
	holidays, err := s.repo.FindBetween(ctx, startDay, endDay)
	if err != nil {
		return 0, err
	}

	return CountWorkingDays(startDay, endDay, holidaySet(holidays))
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID.String(),
		Name:     h.Name,
		Date:     h.Date.Format("2006-01-02"),
		Category: h.Category,
	}
}
