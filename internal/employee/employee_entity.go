package employee

import (
	"strconv"
	"time"

	employeeerrors "astramaie-backoffice/internal/employee/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	FullName       string    `gorm:"type:varchar(120);not null"`
	Email          string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	Department     string    `gorm:"type:varchar(80);not null"`
	Role           string    `gorm:"type:varchar(30);not null;default:'employee'"`

	// Salary is stored as a numeric string; the API boundary parses it once.
	Salary      string    `gorm:"type:numeric(12,2);not null"`
	JoiningDate time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// BasicSalary parses the stored salary. A record that fails here is corrupt,
// not merely unset, so callers surface the error instead of defaulting.
func (e Employee) BasicSalary() (float64, error) {
	v, err := strconv.ParseFloat(e.Salary, 64)
	if err != nil || v <= 0 {
		return 0, employeeerrors.ErrInvalidSalary
	}
	return v, nil
}
