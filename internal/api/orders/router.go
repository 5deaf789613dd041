package orders

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func RegisterRoutes(router *gin.RouterGroup, orders *store.Collection[types.Order], customers *store.Collection[types.Customer]) {
	service := NewService(orders, customers)
	controller := NewController(service)
	router.GET("/orders", controller.List)
	router.POST("/orders", controller.Create)
	router.GET("/orders/:id", controller.Get)
	router.PUT("/orders/:id", controller.Update)
	router.DELETE("/orders/:id", controller.Delete)
}
