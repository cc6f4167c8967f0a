package attendance

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
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	{
		att.POST("/check-in", rbac.Authorize(rbacService, "attendance", "create"), handler.CheckIn)
		att.POST("/check-out", rbac.Authorize(rbacService, "attendance", "create"), handler.CheckOut)
		att.GET("", rbac.Authorize(rbacService, "attendance", "read"), handler.GetAll)
		att.GET("/rate/:employeeId", rbac.Authorize(rbacService, "attendance", "read"), handler.GetRate)
	}
}
