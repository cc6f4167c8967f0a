package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "astramaie-backoffice/internal/attendance/errors"
	"astramaie-backoffice/internal/calendar"
	"astramaie-backoffice/internal/employee"
	employeeerrors "astramaie-backoffice/internal/employee/errors"
	"astramaie-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeLookup is satisfied by employee.Repository.
type EmployeeLookup interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, query ListAttendanceQuery) ([]AttendanceResponse, error)
	GetRate(ctx context.Context, employeeID string, asOf time.Time) (AttendanceRateResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeLookup
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

// parseTimestamp accepts an explicit RFC3339 timestamp and defaults to the
// current time when the field is omitted.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidTimeFormat
	}
	return ts.UTC(), nil
}

func (s *service) CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-in begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindOpenByEmployeeForUpdate(ctx, req.EmployeeID)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error("check-in open session lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	record := &Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Date:       calendar.NormalizeDate(ts),
		CheckIn:    ts,
		Status:     StatusPresent,
	}

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("check-in persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-in commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("employee checked in",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Time("check_in", ts),
	)

	return mapToResponse(*record), nil
}

func (s *service) CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-out begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindOpenByEmployeeForUpdate(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AttendanceResponse{}, attendanceerrors.ErrNoOpenSession
		}
		s.logger.Error("check-out open session lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if ts.Before(record.CheckIn) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimestamp
	}

	record.CheckOut = &ts
	record.Hours = FormatHours(ts.Sub(record.CheckIn))

	if err := qtx.CloseSession(ctx, record); err != nil {
		s.logger.Error("check-out close failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-out commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("employee checked out",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("hours", record.Hours),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, query ListAttendanceQuery) ([]AttendanceResponse, error) {
	records, err := s.repo.FindAll(ctx, query.EmployeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetRate(ctx context.Context, employeeID string, asOf time.Time) (AttendanceRateResponse, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceRateResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AttendanceRateResponse{}, err
	}

	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return AttendanceRateResponse{}, err
	}

	asOf = calendar.NormalizeDate(asOf)

	return AttendanceRateResponse{
		EmployeeID: employeeID,
		AsOf:       asOf.Format("2006-01-02"),
		Rate:       Rate(records, calendar.NormalizeDate(empl.JoiningDate), asOf),
	}, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn.UTC().Format(time.RFC3339),
		Hours:      a.Hours,
		Status:     a.Status,
	}
	if a.CheckOut != nil {
		out := a.CheckOut.UTC().Format(time.RFC3339)
		resp.CheckOut = &out
	}
	return resp
}
