package document

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Document) error
	FindByID(ctx context.Context, id string) (*Document, error)
	ExistsByEmployeeAndTemplate(ctx context.Context, employeeID, template string) (bool, error)
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

func (r *repository) Create(ctx context.Context, d *Document) error {
	query := `
        INSERT INTO documents (
            id, employee_id, template, content_type, body, generated_on, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, NOW())
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		d.ID, d.EmployeeID, d.Template, d.ContentType, d.Body, d.GeneratedOn,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ExistsByEmployeeAndTemplate(ctx context.Context, employeeID, template string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Document{}).
		Where("employee_id = ? AND template = ?", employeeID, template).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) execer() gorm.ConnPool {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
