package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Labels(r *gin.RouterGroup, labelBatchController *controller.LabelBatchController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/labels")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", labelBatchController.List)
		v1.POST("", labelBatchController.Create)
		v1.GET("/export", labelBatchController.Export)
		v1.GET("/:id", labelBatchController.Get)
		v1.DELETE("/:id", labelBatchController.Delete)
		v1.GET("/:id/download", labelBatchController.Download)
		v1.POST("/:id/regenerate", labelBatchController.Regenerate)
	}
}
