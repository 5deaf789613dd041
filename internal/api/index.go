// Package api wires every feature router onto the versioned route group.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/api/analytics"
	"github.com/taskflow/storefront/internal/api/auth"
	"github.com/taskflow/storefront/internal/api/customers"
	"github.com/taskflow/storefront/internal/api/orders"
	"github.com/taskflow/storefront/internal/api/products"
	"github.com/taskflow/storefront/internal/api/subscriptions"
	"github.com/taskflow/storefront/internal/shared"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

// Dependencies carries the collections and services shared by the features.
type Dependencies struct {
	Customers     *store.Collection[types.Customer]
	Orders        *store.Collection[types.Order]
	Products      *store.Collection[types.Product]
	Subscriptions *store.Collection[types.Subscription]
	Users         *store.Collection[types.User]
	Tokens        *shared.TokenManager
	RefreshTokens *shared.TokenManager
}

// NewSeededDependencies builds collections preloaded with the demo dataset.
func NewSeededDependencies(tokens, refresh *shared.TokenManager) Dependencies {
	return Dependencies{
		Customers:     store.NewCollection(func(c types.Customer) int { return c.ID }, store.SeedCustomers()...),
		Orders:        store.NewCollection(func(o types.Order) int { return o.ID }, store.SeedOrders()...),
		Products:      store.NewCollection(func(p types.Product) int { return p.ID }, store.SeedProducts()...),
		Subscriptions: store.NewCollection(func(s types.Subscription) int { return s.ID }, store.SeedSubscriptions()...),
		Users:         store.NewCollection(func(u types.User) int { return u.ID }, store.SeedUsers()...),
		Tokens:        tokens,
		RefreshTokens: refresh,
	}
}

func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	customers.RegisterRoutes(router, deps.Customers)
	orders.RegisterRoutes(router, deps.Orders, deps.Customers)
	products.RegisterRoutes(router, deps.Products)
	subscriptions.RegisterRoutes(router, deps.Subscriptions)
	auth.RegisterRoutes(router, deps.Users, deps.Tokens, deps.RefreshTokens)
	analytics.RegisterRoutes(router, deps.Orders, deps.Customers, deps.Products)
}
