package customers

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func RegisterRoutes(router *gin.RouterGroup, customers *store.Collection[types.Customer]) {
	service := NewService(customers)
	controller := NewController(service)
	router.GET("/customers", controller.List)
	router.POST("/customers", controller.Create)
	router.GET("/customers/:id", controller.Get)
	router.PUT("/customers/:id", controller.Update)
	router.DELETE("/customers/:id", controller.Delete)
}
