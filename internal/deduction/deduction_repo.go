package deduction

import (
	"context"
	"database/sql"
	"errors"

	deductionerrors "astramaie-backoffice/internal/deduction/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Deduction) error
	FindAll(ctx context.Context, employeeID, month string) ([]Deduction, error)
	SumByEmployeeMonth(ctx context.Context, employeeID, month string) (float64, error)
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

// Create writes through the raw connection so it joins the caller's
// transaction when one is supplied via WithTx.
func (r *repository) Create(ctx context.Context, d *Deduction) error {
	query := `
        INSERT INTO deductions (
            id, employee_id, leave_id, month, days, amount, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, NOW())
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		d.ID, d.EmployeeID, d.LeaveID, d.Month, d.Days, d.Amount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return deductionerrors.ErrDeductionExists
		}
		return err
	}
	return nil
}

func (r *repository) FindAll(ctx context.Context, employeeID, month string) ([]Deduction, error) {
	q := r.db.WithContext(ctx).Model(&Deduction{})
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if month != "" {
		q = q.Where("month = ?", month)
	}

	var deductions []Deduction
	err := q.Order("created_at DESC").Find(&deductions).Error
	return deductions, err
}

func (r *repository) SumByEmployeeMonth(ctx context.Context, employeeID, month string) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&Deduction{}).
		Select("SUM(amount)").
		Where("employee_id = ? AND month = ?", employeeID, month).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (r *repository) execer() gorm.ConnPool {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
