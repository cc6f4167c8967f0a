package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", rbac.Authorize(rbacService, "employee", "read"), handler.GetAll)
		employees.GET("/options", rbac.Authorize(rbacService, "employee", "read"), handler.GetOptions)
		employees.GET("/:id", rbac.Authorize(rbacService, "employee", "read"), handler.GetByID)
		employees.POST("", rbac.Authorize(rbacService, "employee", "create"), handler.Create)
	}
}
