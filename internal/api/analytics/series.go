package analytics

import (
	"github.com/taskflow/storefront/internal/analytics"
)

// Reference series for the dashboards. There is no event history behind the
// storefront, so traffic, funnel, and period revenue come from these fixed
// datasets; derived percentages are always computed, never stored.

func revenueSeries(dateRange string) []RevenuePoint {
	switch dateRange {
	case "7d":
		return []RevenuePoint{
			{Month: "Mon", Revenue: 3200, Orders: 32, Customers: 24},
			{Month: "Tue", Revenue: 3800, Orders: 38, Customers: 29},
			{Month: "Wed", Revenue: 4200, Orders: 42, Customers: 32},
			{Month: "Thu", Revenue: 3900, Orders: 39, Customers: 30},
			{Month: "Fri", Revenue: 4500, Orders: 45, Customers: 34},
			{Month: "Sat", Revenue: 4800, Orders: 48, Customers: 37},
			{Month: "Sun", Revenue: 4350, Orders: 43, Customers: 33},
		}
	case "90d":
		return []RevenuePoint{
			{Month: "Jul", Revenue: 14500, Orders: 145, Customers: 112},
			{Month: "Aug", Revenue: 15200, Orders: 152, Customers: 118},
			{Month: "Sep", Revenue: 16800, Orders: 168, Customers: 129},
			{Month: "Oct", Revenue: 17500, Orders: 175, Customers: 135},
			{Month: "Nov", Revenue: 18200, Orders: 182, Customers: 141},
			{Month: "Dec", Revenue: 19500, Orders: 195, Customers: 151},
		}
	}
	return []RevenuePoint{
		{Month: "Jan", Revenue: 8500, Orders: 85, Customers: 65},
		{Month: "Feb", Revenue: 9200, Orders: 92, Customers: 71},
		{Month: "Mar", Revenue: 10800, Orders: 108, Customers: 83},
		{Month: "Apr", Revenue: 11500, Orders: 115, Customers: 89},
		{Month: "May", Revenue: 12200, Orders: 122, Customers: 94},
		{Month: "Jun", Revenue: 13800, Orders: 138, Customers: 106},
		{Month: "Jul", Revenue: 14500, Orders: 145, Customers: 112},
		{Month: "Aug", Revenue: 15200, Orders: 152, Customers: 118},
		{Month: "Sep", Revenue: 16800, Orders: 168, Customers: 129},
		{Month: "Oct", Revenue: 17500, Orders: 175, Customers: 135},
		{Month: "Nov", Revenue: 18200, Orders: 182, Customers: 141},
		{Month: "Dec", Revenue: 19500, Orders: 195, Customers: 151},
	}
}

func overviewTotals(dateRange string) (revenue float64, orders, customers int, conversionRate, conversionGrowth float64) {
	switch dateRange {
	case "7d":
		return 28750, 287, 198, 3.8, 1.2
	case "90d":
		return 450280, 4502, 3245, 3.1, -5.3
	}
	return 125430, 1247, 892, 3.4, -2.1
}

func productPerformance() []ProductPerformance {
	return []ProductPerformance{
		{Name: "Pro Task Templates", Sales: 324, Revenue: 9396, Growth: 15.2},
		{Name: "Productivity Planner", Sales: 189, Revenue: 3591, Growth: 8.7},
		{Name: "Team Collaboration Kit", Sales: 156, Revenue: 13884, Growth: 22.1},
		{Name: "Focus Timer Pro", Sales: 203, Revenue: 3045, Growth: -5.3},
		{Name: "Project Management Suite", Sales: 98, Revenue: 4802, Growth: 31.4},
	}
}

// customerSegments carries raw counts; percentages are filled in by the
// aggregate computator at request time.
func customerSegments() []CustomerSegment {
	return []CustomerSegment{
		{Segment: "New Customers", Count: 245, Revenue: 18375},
		{Segment: "Returning Customers", Count: 387, Revenue: 46440},
		{Segment: "VIP Customers", Count: 89, Revenue: 35600},
		{Segment: "Enterprise", Count: 171, Revenue: 25015},
	}
}

func trafficSources() []TrafficSource {
	return []TrafficSource{
		{Source: "Organic Search", Visitors: 12450, Conversions: 423, Revenue: 31725},
		{Source: "Direct", Visitors: 8920, Conversions: 312, Revenue: 23400},
		{Source: "Social Media", Visitors: 6780, Conversions: 189, Revenue: 14175},
		{Source: "Email Marketing", Visitors: 4560, Conversions: 234, Revenue: 17550},
		{Source: "Paid Ads", Visitors: 3240, Conversions: 89, Revenue: 6675},
	}
}

func salesFunnel() []analytics.Stage {
	return []analytics.Stage{
		{Stage: "Visitors", Count: 36950},
		{Stage: "Product Views", Count: 14780},
		{Stage: "Add to Cart", Count: 5912},
		{Stage: "Checkout", Count: 1847},
		{Stage: "Purchase", Count: 1247},
	}
}

func monthlySales() []SalesPoint {
	return []SalesPoint{
		{Month: "Jan", Revenue: 4200, Orders: 120},
		{Month: "Feb", Revenue: 3800, Orders: 110},
		{Month: "Mar", Revenue: 5200, Orders: 145},
		{Month: "Apr", Revenue: 4600, Orders: 132},
		{Month: "May", Revenue: 6100, Orders: 168},
		{Month: "Jun", Revenue: 5800, Orders: 155},
		{Month: "Jul", Revenue: 7200, Orders: 189},
		{Month: "Aug", Revenue: 6800, Orders: 178},
		{Month: "Sep", Revenue: 8100, Orders: 210},
		{Month: "Oct", Revenue: 7600, Orders: 198},
		{Month: "Nov", Revenue: 9200, Orders: 245},
		{Month: "Dec", Revenue: 8900, Orders: 232},
	}
}
