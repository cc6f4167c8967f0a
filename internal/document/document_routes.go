package document

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
	docs := r.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.POST("/:template/:employeeId", rbac.Authorize(rbacService, "document", "create"), handler.Generate)
		docs.GET("/:id", rbac.Authorize(rbacService, "document", "read"), handler.GetByID)
	}
}
