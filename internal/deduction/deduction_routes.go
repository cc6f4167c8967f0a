package deduction

import (
	"astramaie-backoffice/internal/middleware"
	"astramaie-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	deductions := r.Group("/deductions")
	deductions.Use(middleware.AuthMiddleware())
	{
		deductions.GET("", rbac.Authorize(rbacService, "deduction", "read"), handler.GetAll)
	}
}
