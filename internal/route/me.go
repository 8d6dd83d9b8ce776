package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Me(r *gin.RouterGroup, authController *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/me")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", authController.Me)
	}
}
