package document

import (
	"context"
	"errors"
	"math"
	"time"

	documenterrors "astramaie-backoffice/internal/document/errors"
	"astramaie-backoffice/internal/employee"
	employeeerrors "astramaie-backoffice/internal/employee/errors"
	"astramaie-backoffice/internal/numwords"
	"astramaie-backoffice/internal/payroll"
	"astramaie-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeLookup is satisfied by employee.Repository.
type EmployeeLookup interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// StatementSource is satisfied by payroll.Service.
type StatementSource interface {
	GetBreakdown(ctx context.Context, employeeID string, asOf time.Time) (payroll.MonthlyStatement, error)
}

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateDocumentRequest) (DocumentResponse, error)
	GetByID(ctx context.Context, id string) (DocumentResponse, error)
	HasDocument(ctx context.Context, employeeID, template string) (bool, error)
}

type service struct {
	repo       Repository
	employees  EmployeeLookup
	statements StatementSource
	logger     *zap.Logger
}

func NewService(repo Repository, employees EmployeeLookup, statements StatementSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, employees: employees, statements: statements, logger: l}
}

func (s *service) Generate(ctx context.Context, req GenerateDocumentRequest) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !KnownTemplate(req.Template) {
		return DocumentResponse{}, documenterrors.ErrUnknownTemplate
	}

	generatedOn := time.Now().UTC().Format("2006-01-02")
	if req.GeneratedOn != "" {
		if _, err := time.Parse("2006-01-02", req.GeneratedOn); err != nil {
			return DocumentResponse{}, documenterrors.ErrInvalidGeneratedOn
		}
		generatedOn = req.GeneratedOn
	}
	asOf, _ := time.Parse("2006-01-02", generatedOn)

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return DocumentResponse{}, err
	}

	stmt, err := s.statements.GetBreakdown(ctx, req.EmployeeID, asOf)
	if err != nil {
		return DocumentResponse{}, err
	}

	netInWords, err := numwords.ToWords(int64(math.Round(stmt.Breakdown.NetSalary)))
	if err != nil {
		return DocumentResponse{}, err
	}

	data := RenderData{
		Employee: EmployeeData{
			Number:      empl.EmployeeNumber,
			Name:        empl.FullName,
			Email:       empl.Email,
			Department:  empl.Department,
			Role:        empl.Role,
			JoiningDate: empl.JoiningDate.Format("2006-01-02"),
		},
		Payroll:     stmt.Breakdown,
		NetInWords:  netInWords,
		GeneratedOn: generatedOn,
	}

	var body []byte
	contentType := "text/plain; charset=utf-8"
	if req.AsPDF && req.Template == TemplatePayslip {
		body, err = PayslipPDF(data)
		contentType = "application/pdf"
	} else {
		body, err = Render(req.Template, data)
	}
	if err != nil {
		s.logger.Error("document render failed",
			zap.String("template", req.Template),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}

	doc := &Document{
		ID:          uuid.New(),
		EmployeeID:  empl.ID,
		Template:    req.Template,
		ContentType: contentType,
		Body:        body,
		GeneratedOn: asOf,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("document persist failed",
			zap.String("template", req.Template),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}

	s.logger.Info("document generated",
		zap.String("request_id", rid),
		zap.String("document_id", doc.ID.String()),
		zap.String("template", doc.Template),
		zap.String("employee_id", doc.EmployeeID.String()),
	)

	return mapToResponse(*doc), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DocumentResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, documenterrors.ErrDocumentNotFound
		}
		return DocumentResponse{}, err
	}
	return mapToResponse(*d), nil
}

func (s *service) HasDocument(ctx context.Context, employeeID, template string) (bool, error) {
	return s.repo.ExistsByEmployeeAndTemplate(ctx, employeeID, template)
}

func mapToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID.String(),
		EmployeeID:  d.EmployeeID.String(),
		Template:    d.Template,
		ContentType: d.ContentType,
		Body:        d.Body,
		GeneratedOn: d.GeneratedOn.Format("2006-01-02"),
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
