package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
)

// At most one open record (CheckOut == nil) may exist per employee; the
// service checks this under a row lock before inserting.
type Attendance struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Date       time.Time  `gorm:"type:date;not null;index"`
	CheckIn    time.Time  `gorm:"type:timestamptz;not null"`
	CheckOut   *time.Time `gorm:"type:timestamptz"`
	Hours      string     `gorm:"type:varchar(12);not null;default:''"`
	Status     string     `gorm:"type:varchar(10);not null;default:'PRESENT'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
