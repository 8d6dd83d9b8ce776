package route

import (
	"github.com/dipii/backoffice/internal/controller"
	"github.com/dipii/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Suppliers(r *gin.RouterGroup, supplierController *controller.SupplierController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/suppliers")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", supplierController.List)
		v1.POST("", supplierController.Create)
		v1.GET("/:id", supplierController.Get)
		v1.PUT("/:id", supplierController.Update)
		v1.DELETE("/:id", supplierController.Delete)
	}
}
