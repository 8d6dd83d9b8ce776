package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Dashboard(r *gin.RouterGroup, dashboardController *controller.DashboardController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/dashboard")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", dashboardController.Summary)
		v1.GET("/data", dashboardController.Data)
	}
}
