package app

import (
	"database/sql"

	"astramaie-backoffice/internal/attendance"
	"astramaie-backoffice/internal/calendar"
	"astramaie-backoffice/internal/deduction"
	"astramaie-backoffice/internal/document"
	"astramaie-backoffice/internal/employee"
	"astramaie-backoffice/internal/leave"
	"astramaie-backoffice/internal/messaging/kafka"
	"astramaie-backoffice/internal/payroll"
	"astramaie-backoffice/internal/rbac"
	"astramaie-backoffice/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	calendarRepo := calendar.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	calendarService := calendar.NewService(calendarRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	deductionService := deduction.NewService(deductionRepo)
	payrollService := payroll.NewService(employeeRepo, deductionRepo, outboxRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, calendarService, deductionRepo, outboxRepo, payrollService)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)
	documentService := document.NewService(documentRepo, employeeRepo, payrollService)

	// --- Handlers ---
	calendarHandler := calendar.NewHandler(calendarService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	deductionHandler := deduction.NewHandler(deductionService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService)
	documentHandler := document.NewHandler(documentService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		calendar.RegisterRoutes(api, calendarHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		deduction.RegisterRoutes(api, deductionHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		document.RegisterRoutes(api, documentHandler, rbacService)
	}

	return nil
}
