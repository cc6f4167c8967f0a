package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", rbac.Authorize(rbacService, "leave", "create"), handler.Submit)
		leaves.GET("", rbac.Authorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/:id", rbac.Authorize(rbacService, "leave", "read"), handler.GetByID)
		leaves.POST("/:id/review", rbac.Authorize(rbacService, "leave", "review"), handler.Review)
	}
}
