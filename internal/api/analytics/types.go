package analytics

import (
	"time"

	"github.com/taskflow/storefront/internal/analytics"
	"github.com/taskflow/storefront/internal/types"
)

// ====== DASHBOARD TYPES ======

type Overview struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	RevenueGrowth    float64 `json:"revenueGrowth"`
	TotalOrders      int     `json:"totalOrders"`
	OrdersGrowth     float64 `json:"ordersGrowth"`
	TotalCustomers   int     `json:"totalCustomers"`
	CustomersGrowth  float64 `json:"customersGrowth"`
	ConversionRate   float64 `json:"conversionRate"`
	ConversionGrowth float64 `json:"conversionGrowth"`
}

type RevenuePoint struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
	Customers int     `json:"customers"`
}

type ProductPerformance struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Growth  float64 `json:"growth"`
}

type CustomerSegment struct {
	Segment    string  `json:"segment"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

type TrafficSource struct {
	Source      string  `json:"source"`
	Visitors    int     `json:"visitors"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

type Dashboard struct {
	Overview           Overview             `json:"overview"`
	RevenueData        []RevenuePoint       `json:"revenueData"`
	ProductPerformance []ProductPerformance `json:"productPerformance"`
	CustomerSegments   []CustomerSegment    `json:"customerSegments"`
	TrafficSources     []TrafficSource      `json:"trafficSources"`
	SalesFunnel        []analytics.Stage    `json:"salesFunnel"`
}

// ====== ADMIN STATS TYPES ======

type RecentOrder struct {
	ID       int               `json:"id"`
	Customer string            `json:"customer"`
	Email    string            `json:"email"`
	Total    float64           `json:"total"`
	Status   types.OrderStatus `json:"status"`
	Date     time.Time         `json:"date"`
}

type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type SalesPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Sales int     `json:"sales"`
}

type AdminStats struct {
	TotalRevenue      float64         `json:"totalRevenue"`
	TotalOrders       int             `json:"totalOrders"`
	TotalCustomers    int             `json:"totalCustomers"`
	TotalProducts     int             `json:"totalProducts"`
	RevenueGrowth     float64         `json:"revenueGrowth"`
	OrdersGrowth      float64         `json:"ordersGrowth"`
	CustomersGrowth   float64         `json:"customersGrowth"`
	ProductsGrowth    float64         `json:"productsGrowth"`
	RecentOrders      []RecentOrder   `json:"recentOrders"`
	TopProducts       []TopProduct    `json:"topProducts"`
	SalesData         []SalesPoint    `json:"salesData"`
	CategoryBreakdown []CategorySlice `json:"categoryBreakdown"`
}
