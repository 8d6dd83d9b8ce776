package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Intakes(r *gin.RouterGroup, intakeController *controller.IntakeController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/intakes")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", intakeController.List)
		v1.POST("", intakeController.Create)
		v1.GET("/export", intakeController.Export)
		v1.GET("/:id", intakeController.Get)
		v1.PUT("/:id", intakeController.Update)
		v1.DELETE("/:id", intakeController.Delete)
	}
}
