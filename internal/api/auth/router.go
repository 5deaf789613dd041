package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/shared"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func RegisterRoutes(router *gin.RouterGroup, users *store.Collection[types.User], tokens, refresh *shared.TokenManager) {
	service := NewService(users, tokens, refresh)
	controller := NewController(service)
	router.POST("/auth/login", controller.Login)
	router.POST("/auth/signup", controller.Signup)
	router.POST("/auth/refresh", controller.Refresh)
	router.GET("/auth/me", shared.RequireAuth(tokens), controller.Me)
}
