package products

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func RegisterRoutes(router *gin.RouterGroup, products *store.Collection[types.Product]) {
	service := NewService(products)
	controller := NewController(service)
	router.GET("/products", controller.List)
	router.POST("/products", controller.Create)
	router.GET("/products/:id", controller.Get)
	router.PUT("/products/:id", controller.Update)
	router.DELETE("/products/:id", controller.Delete)
}
