package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Users(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", userController.List)
		v1.POST("", userController.Create)
		// Test endpoint with curl: curl -H "Authorization: Bearer <token>" http://localhost:8080/api/v1/users/1
		v1.GET("/:id", userController.Get)
		v1.PUT("/:id", userController.Update)
		v1.DELETE("/:id", userController.Delete)
	}
}
