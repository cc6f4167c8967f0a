package calendar

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
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", rbac.Authorize(rbacService, "holiday", "read"), handler.GetHolidays)
		holidays.POST("", rbac.Authorize(rbacService, "holiday", "create"), handler.CreateHoliday)
		holidays.DELETE("/:id", rbac.Authorize(rbacService, "holiday", "delete"), handler.DeleteHoliday)
	}

	cal := r.Group("/calendar")
	cal.Use(middleware.AuthMiddleware())
	{
		cal.GET("/working-days", rbac.Authorize(rbacService, "holiday", "read"), handler.GetWorkingDays)
	}
}
