package subscriptions

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func RegisterRoutes(router *gin.RouterGroup, subscriptions *store.Collection[types.Subscription]) {
	service := NewService(subscriptions)
	controller := NewController(service)
	router.GET("/subscriptions", controller.List)
	router.POST("/subscriptions", controller.Create)
	router.GET("/subscriptions/:id", controller.Get)
	router.PUT("/subscriptions/:id", controller.Update)
	router.DELETE("/subscriptions/:id", controller.Cancel)
}
