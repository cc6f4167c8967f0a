package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, status string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Leave, error)
	UpdateReview(ctx context.Context, l *Leave) error
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	query := `
        INSERT INTO leaves (
            id, employee_id, employee_name, start_date, end_date, reason, type,
            working_days, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		l.ID, l.EmployeeID, l.EmployeeName, l.StartDate, l.EndDate,
		l.Reason, l.Type, l.WorkingDays, l.Status,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Leave, error) {
	q := r.db.WithContext(ctx).Model(&Leave{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var leaves []Leave
	err := q.Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByIDForUpdate locks the row inside the caller's transaction so two
// concurrent reviews of the same request serialize instead of both seeing
// PENDING.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Leave, error) {
	query := `
        SELECT id, employee_id, employee_name, start_date, end_date, reason, type,
               working_days, status, admin_notes, reviewed_at, created_at, updated_at
        FROM leaves
        WHERE id = $1 AND deleted_at IS NULL
        FOR UPDATE
    `

	var l Leave
	row := r.execer().QueryRowContext(ctx, query, id)
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.EmployeeName, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Type, &l.WorkingDays, &l.Status,
		&l.AdminNotes, &l.ReviewedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpdateReview(ctx context.Context, l *Leave) error {
	query := `
        UPDATE leaves
        SET status = $1, admin_notes = $2, reviewed_at = $3, updated_at = NOW()
        WHERE id = $4
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		l.Status, l.AdminNotes, l.ReviewedAt, l.ID,
	)
	return err
}

func (r *repository) execer() gorm.ConnPool {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
