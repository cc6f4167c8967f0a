package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindOpenByEmployeeForUpdate(ctx context.Context, employeeID string) (*Attendance, error)
	CloseSession(ctx context.Context, a *Attendance) error
	FindAll(ctx context.Context, employeeID string) ([]Attendance, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	query := `
        INSERT INTO attendances (
            id, employee_id, date, check_in, check_out, hours, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		a.ID, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.Hours, a.Status,
	)
	return err
}

// FindOpenByEmployeeForUpdate locks the employee's open session row, if
// any, so concurrent check-ins and check-outs for the same employee
// serialize.
func (r *repository) FindOpenByEmployeeForUpdate(ctx context.Context, employeeID string) (*Attendance, error) {
	query := `
        SELECT id, employee_id, date, check_in, check_out, hours, status, created_at, updated_at
        FROM attendances
        WHERE employee_id = $1 AND check_out IS NULL AND deleted_at IS NULL
        FOR UPDATE
    `

	var a Attendance
	row := r.execer().QueryRowContext(ctx, query, employeeID)
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Hours, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) CloseSession(ctx context.Context, a *Attendance) error {
	query := `
        UPDATE attendances
        SET check_out = $1, hours = $2, status = $3, updated_at = NOW()
        WHERE id = $4
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		a.CheckOut, a.Hours, a.Status, a.ID,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, employeeID string) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Model(&Attendance{})
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var records []Attendance
	err := q.Order("check_in DESC").Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("check_in ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) execer() gorm.ConnPool {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
