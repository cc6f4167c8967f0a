package calendar

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryFestival = "festival"
	CategoryNational = "national"
	CategoryCompany  = "company"
)

type Holiday struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(120);not null"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_holidays_date"`
	Category string    `gorm:"type:varchar(20);not null;default:'company'"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Holiday) TableName() string {
	return "holidays"
}
