package analytics

import (
	"sort"

	"github.com/taskflow/storefront/internal/analytics"
	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

type Service struct {
	orders    *store.Collection[types.Order]
	customers *store.Collection[types.Customer]
	products  *store.Collection[types.Product]
}

func NewService(orders *store.Collection[types.Order], customers *store.Collection[types.Customer], products *store.Collection[types.Product]) *Service {
	return &Service{orders: orders, customers: customers, products: products}
}

// Dashboard assembles the analytics view for a date range. Growth figures
// derive from the period's revenue series endpoints; segment and funnel
// percentages are computed fresh from the raw counts.
func (s *Service) Dashboard(dateRange string) Dashboard {
	series := revenueSeries(dateRange)

	var revenueGrowth, ordersGrowth, customersGrowth float64
	if len(series) >= 2 {
		last := series[len(series)-1]
		prev := series[len(series)-2]
		revenueGrowth = analytics.GrowthPercent(last.Revenue, prev.Revenue)
		ordersGrowth = analytics.GrowthPercent(float64(last.Orders), float64(prev.Orders))
		customersGrowth = analytics.GrowthPercent(float64(last.Customers), float64(prev.Customers))
	}

	revenue, orders, customers, conversionRate, conversionGrowth := overviewTotals(dateRange)

	segments := customerSegments()
	shares := make([]analytics.Share, len(segments))
	for i, seg := range segments {
		shares[i] = analytics.Share{Name: seg.Segment, Count: seg.Count}
	}
	for i, share := range analytics.Shares(shares) {
		segments[i].Percentage = share.Percentage
	}

	return Dashboard{
		Overview: Overview{
			TotalRevenue:     revenue,
			RevenueGrowth:    revenueGrowth,
			TotalOrders:      orders,
			OrdersGrowth:     ordersGrowth,
			TotalCustomers:   customers,
			CustomersGrowth:  customersGrowth,
			ConversionRate:   conversionRate,
			ConversionGrowth: conversionGrowth,
		},
		RevenueData:        series,
		ProductPerformance: productPerformance(),
		CustomerSegments:   segments,
		TrafficSources:     trafficSources(),
		SalesFunnel:        analytics.FunnelStages(salesFunnel()),
	}
}

// AdminStats computes the back-office overview from the live collections,
// falling back to the reference monthly series where no history exists.
func (s *Service) AdminStats() AdminStats {
	orders := s.orders.List()

	var revenueCents int64
	for _, order := range orders {
		revenueCents += utils.Cents(order.Total)
	}

	recent := query.Apply(orders, query.Params{SortBy: "newest"}, query.Config[types.Order]{
		Sorts: map[string]func(a, b types.Order) bool{
			"newest": func(a, b types.Order) bool { return a.CreatedAt.After(b.CreatedAt) },
		},
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentOrders := make([]RecentOrder, len(recent))
	for i, order := range recent {
		recentOrders[i] = RecentOrder{
			ID:       order.ID,
			Customer: order.Customer.Name,
			Email:    order.Customer.Email,
			Total:    order.Total,
			Status:   order.Status,
			Date:     order.CreatedAt,
		}
	}

	sales := monthlySales()
	last := sales[len(sales)-1]
	prev := sales[len(sales)-2]
	rs := revenueSeries("30d")
	lastRS := rs[len(rs)-1]
	prevRS := rs[len(rs)-2]

	return AdminStats{
		TotalRevenue:    utils.Dollars(revenueCents),
		TotalOrders:     len(orders),
		TotalCustomers:  s.customers.Len(),
		TotalProducts:   s.products.Len(),
		RevenueGrowth:   analytics.GrowthPercent(last.Revenue, prev.Revenue),
		OrdersGrowth:    analytics.GrowthPercent(float64(last.Orders), float64(prev.Orders)),
		CustomersGrowth: analytics.GrowthPercent(float64(lastRS.Customers), float64(prevRS.Customers)),
		// The catalog has no prior-period snapshot to diff against.
		ProductsGrowth:    0,
		RecentOrders:      recentOrders,
		TopProducts:       s.topProducts(orders),
		SalesData:         sales,
		CategoryBreakdown: s.categoryBreakdown(),
	}
}

// topProducts aggregates line items across all orders by product name.
func (s *Service) topProducts(orders []types.Order) []TopProduct {
	sales := make(map[string]int)
	revenue := make(map[string]int64)
	names := make([]string, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if _, seen := sales[item.Name]; !seen {
				names = append(names, item.Name)
			}
			sales[item.Name] += item.Quantity
			revenue[item.Name] += utils.Cents(item.Price) * int64(item.Quantity)
		}
	}
	top := make([]TopProduct, 0, len(names))
	for _, name := range names {
		top = append(top, TopProduct{Name: name, Sales: sales[name], Revenue: utils.Dollars(revenue[name])})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Revenue > top[j].Revenue })
	if len(top) > 4 {
		top = top[:4]
	}
	return top
}

// categoryBreakdown shares out the catalog by category.
func (s *Service) categoryBreakdown() []CategorySlice {
	products := s.products.List()
	counts := make(map[string]int)
	names := make([]string, 0)
	for _, product := range products {
		if _, seen := counts[product.Category]; !seen {
			names = append(names, product.Category)
		}
		counts[product.Category]++
	}
	shares := make([]analytics.Share, len(names))
	for i, name := range names {
		shares[i] = analytics.Share{Name: name, Count: counts[name]}
	}
	out := make([]CategorySlice, len(shares))
	for i, share := range analytics.Shares(shares) {
		out[i] = CategorySlice{Name: share.Name, Value: share.Percentage, Sales: share.Count}
	}
	return out
}
