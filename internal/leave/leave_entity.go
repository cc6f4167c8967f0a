package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	TypePersonal  = "personal"
	TypeSick      = "sick"
	TypeVacation  = "vacation"
	TypeEmergency = "emergency"
)

type Leave struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeName string    `gorm:"type:varchar(120);not null"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	Reason       string    `gorm:"type:text;not null"`
	Type         string    `gorm:"type:varchar(20);not null"`

	// WorkingDays is frozen at submit time; later holiday edits do not
	// change an already-filed request.
	WorkingDays int `gorm:"not null"`

	Status     string     `gorm:"type:varchar(10);not null;default:'PENDING';index"`
	AdminNotes *string    `gorm:"type:text"`
	ReviewedAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Leave) TableName() string {
	return "leaves"
}

func ValidType(t string) bool {
	switch t {
	case TypePersonal, TypeSick, TypeVacation, TypeEmergency:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
