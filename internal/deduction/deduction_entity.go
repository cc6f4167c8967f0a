package deduction

import (
	"time"

	"github.com/google/uuid"
)

// Deduction rows are append-only; there is no update or delete path.
type Deduction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Month      string    `gorm:"type:varchar(7);not null;index"`
	Days       int       `gorm:"not null"`
	Amount     float64   `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time
}

func (Deduction) TableName() string {
	return "deductions"
}
