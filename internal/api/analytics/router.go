package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func RegisterRoutes(router *gin.RouterGroup, orders *store.Collection[types.Order], customers *store.Collection[types.Customer], products *store.Collection[types.Product]) {
	service := NewService(orders, customers, products)
	controller := NewController(service)
	router.GET("/analytics", controller.Dashboard)
	router.GET("/admin/stats", controller.AdminStats)
}
