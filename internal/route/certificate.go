package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Certificates(r *gin.RouterGroup, certificateController *controller.CertificateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/certificates")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", certificateController.List)
		v1.POST("", certificateController.Create)
		v1.GET("/export", certificateController.Export)
		v1.GET("/merge", certificateController.Merge)
		v1.GET("/:id", certificateController.Get)
		v1.PUT("/:id", certificateController.Update)
		v1.DELETE("/:id", certificateController.Delete)
		v1.GET("/:id/download", certificateController.Download)
		v1.POST("/:id/regenerate", certificateController.Regenerate)
	}
}
