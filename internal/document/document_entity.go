package document

import (
	"time"

	"github.com/google/uuid"
)

const (
	TemplatePayslip   = "payslip"
	TemplateContract  = "contract"
	TemplateTaxForm   = "taxform"
	TemplateInsurance = "insurance"
	TemplateIDCard    = "idcard"
)

type Document struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Template    string    `gorm:"type:varchar(20);not null;index"`
	ContentType string    `gorm:"type:varchar(40);not null"`
	Body        []byte    `gorm:"type:bytea;not null"`
	GeneratedOn time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
}

func (Document) TableName() string {
	return "documents"
}
