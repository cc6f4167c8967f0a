package payroll

import (
	"astramaie-backoffice/internal/middleware"
	"astramaie-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	pay := r.Group("/payroll")
	pay.Use(middleware.AuthMiddleware())
	{
		pay.GET("/:employeeId", rbac.Authorize(rbacService, "payroll", "read"), handler.GetBreakdown)
		pay.POST("/:employeeId/payslip",
			rbac.Authorize(rbacService, "payroll", "generate"),
			middleware.Idempotency(rdb),
			handler.RequestPayslip,
		)
	}
}
