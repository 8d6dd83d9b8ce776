package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/login", middleware.RateLimiterMiddleware, authController.Login)
		v1.POST("/jwt/access/verify/:token", authController.VerifyJwtAccessToken)
		v1.POST("/jwt/refresh", authController.RefreshAccessToken)
		v1.POST("/logout", authController.Logout)
	}
}
