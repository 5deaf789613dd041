package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func setup() *gin.Engine {
	gin.SetMode(gin.TestMode)
	orders := store.NewCollection(func(o types.Order) int { return o.ID }, store.SeedOrders()...)
	customers := store.NewCollection(func(c types.Customer) int { return c.ID }, store.SeedCustomers()...)
	products := store.NewCollection(func(p types.Product) int { return p.ID }, store.SeedProducts()...)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), orders, customers, products)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestDashboardComputesGrowthFromSeries(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/analytics")
	require.Equal(t, http.StatusOK, w.Code)

	var d Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	// Dec 19500 vs Nov 18200 in the default 30d series.
	assert.Equal(t, 7.1, d.Overview.RevenueGrowth)
	assert.Equal(t, 125430.0, d.Overview.TotalRevenue)
	assert.Len(t, d.RevenueData, 12)
}

func TestDashboardDateRangeSwitchesSeries(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/analytics?dateRange=7d")
	require.Equal(t, http.StatusOK, w.Code)

	var d Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Len(t, d.RevenueData, 7)
	assert.Equal(t, "Mon", d.RevenueData[0].Month)
	assert.Equal(t, 28750.0, d.Overview.TotalRevenue)
}

func TestDashboardSegmentPercentagesAreComputed(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/analytics")
	var d Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))

	require.Len(t, d.CustomerSegments, 4)
	// Counts sum to 892; each share is a rounded percent of that.
	assert.Equal(t, 27.5, d.CustomerSegments[0].Percentage)
	assert.Equal(t, 43.4, d.CustomerSegments[1].Percentage)
	assert.Equal(t, 10.0, d.CustomerSegments[2].Percentage)
	assert.Equal(t, 19.2, d.CustomerSegments[3].Percentage)
}

func TestDashboardFunnelIsRelativeToVisitors(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/analytics")
	var d Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))

	require.Len(t, d.SalesFunnel, 5)
	assert.Equal(t, 100.0, d.SalesFunnel[0].Percentage)
	assert.Equal(t, 40.0, d.SalesFunnel[1].Percentage)
	assert.Equal(t, 16.0, d.SalesFunnel[2].Percentage)
	assert.Equal(t, 5.0, d.SalesFunnel[3].Percentage)
	assert.Equal(t, 3.4, d.SalesFunnel[4].Percentage)
}

func TestDashboardMetricSelection(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/analytics?metric=overview")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "overview")
	assert.Equal(t, 125430.0, body["overview"].TotalRevenue)
	assert.NotContains(t, w.Body.String(), "salesFunnel")
}

func TestDashboardUnknownMetricIs400(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/analytics?metric=horoscope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStatsComesFromLiveCollections(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/admin/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var stats AdminStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	// 322.92 + 612.36 + 106.91 across the seeded orders.
	assert.Equal(t, 1042.19, stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 0.0, stats.ProductsGrowth)
}

func TestAdminStatsRecentOrdersNewestFirst(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/admin/stats")
	var stats AdminStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	require.Len(t, stats.RecentOrders, 3)
	assert.Equal(t, 1, stats.RecentOrders[0].ID)
	assert.Equal(t, 2, stats.RecentOrders[1].ID)
	assert.Equal(t, 3, stats.RecentOrders[2].ID)
	assert.Equal(t, "John Doe", stats.RecentOrders[0].Customer)
}

func TestAdminStatsTopProductsRankedByRevenue(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/admin/stats")
	var stats AdminStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	require.Len(t, stats.TopProducts, 4)
	assert.Equal(t, "Smart Watch Pro", stats.TopProducts[0].Name)
	assert.Equal(t, 449.0, stats.TopProducts[0].Revenue)
	// Two units of the charging pad outsell the laptop stand.
	assert.Equal(t, "Wireless Charging Pad", stats.TopProducts[2].Name)
	assert.Equal(t, 2, stats.TopProducts[2].Sales)
	assert.Equal(t, 118.0, stats.TopProducts[2].Revenue)
	assert.Equal(t, "Minimalist Laptop Stand", stats.TopProducts[3].Name)
}

func TestAdminStatsCategoryBreakdownSharesCatalog(t *testing.T) {
	engine := setup()

	w := get(engine, "/api/v1/admin/stats")
	var stats AdminStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	require.Len(t, stats.CategoryBreakdown, 2)
	total := 0.0
	for _, slice := range stats.CategoryBreakdown {
		total += slice.Value
	}
	assert.Equal(t, 100.0, total)
	assert.Equal(t, "Electronics", stats.CategoryBreakdown[0].Name)
	assert.Equal(t, 50.0, stats.CategoryBreakdown[0].Value)
}
