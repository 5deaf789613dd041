package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskflow/storefront/internal/types"
)

// Seed data stands in for a database; every collection is reset to these
// records on process start.

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp " + value)
	}
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

func strp(value string) *string {
	return &value
}

func floatp(value float64) *float64 {
	return &value
}

func SeedCustomers() []types.Customer {
	return []types.Customer{
		{
			ID:          1,
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john@example.com",
			Phone:       "(555) 123-4567",
			DateOfBirth: "1985-06-15",
			Gender:      "male",
			Status:      types.CustomerActive,
			Addresses: []types.Address{
				{ID: 1, Type: types.AddressShipping, FirstName: "John", LastName: "Doe", Address: "123 Main Street", City: "New York", State: "NY", ZipCode: "10001", Country: "US", IsDefault: true},
			},
			Orders: []types.OrderSummary{
				{ID: 1, OrderNumber: "ORD-2024-001", Total: 322.92, Status: types.OrderProcessing, Date: ts("2024-01-15T10:30:00Z")},
			},
			TotalSpent:        322.92,
			TotalOrders:       1,
			AverageOrderValue: 322.92,
			LastOrderDate:     tsp("2024-01-15T10:30:00Z"),
			Tags:              []string{"vip", "newsletter"},
			CreatedAt:         ts("2023-12-01T08:00:00Z"),
			UpdatedAt:         ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:          2,
			FirstName:   "Jane",
			LastName:    "Smith",
			Email:       "jane@example.com",
			Phone:       "(555) 987-6543",
			DateOfBirth: "1990-03-22",
			Gender:      "female",
			Status:      types.CustomerActive,
			Addresses: []types.Address{
				{ID: 2, Type: types.AddressShipping, FirstName: "Jane", LastName: "Smith", Address: "456 Oak Avenue", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "US", IsDefault: true},
			},
			Orders: []types.OrderSummary{
				{ID: 2, OrderNumber: "ORD-2024-002", Total: 612.36, Status: types.OrderShipped, Date: ts("2024-01-14T16:45:00Z")},
			},
			TotalSpent:        612.36,
			TotalOrders:       1,
			AverageOrderValue: 612.36,
			LastOrderDate:     tsp("2024-01-14T16:45:00Z"),
			Notes:             "Prefers expedited shipping",
			Tags:              []string{"newsletter", "repeat-customer"},
			CreatedAt:         ts("2023-11-15T14:30:00Z"),
			UpdatedAt:         ts("2024-01-15T09:20:00Z"),
		},
		{
			ID:          3,
			FirstName:   "Mike",
			LastName:    "Johnson",
			Email:       "mike@example.com",
			Phone:       "(555) 456-7890",
			DateOfBirth: "1988-11-08",
			Gender:      "male",
			Status:      types.CustomerActive,
			Addresses: []types.Address{
				{ID: 3, Type: types.AddressShipping, FirstName: "Mike", LastName: "Johnson", Address: "789 Pine Street", City: "Chicago", State: "IL", ZipCode: "60601", Country: "US", IsDefault: true},
			},
			Orders: []types.OrderSummary{
				{ID: 3, OrderNumber: "ORD-2024-003", Total: 106.91, Status: types.OrderCompleted, Date: ts("2024-01-13T14:20:00Z")},
			},
			TotalSpent:        106.91,
			TotalOrders:       1,
			AverageOrderValue: 106.91,
			LastOrderDate:     tsp("2024-01-13T14:20:00Z"),
			Tags:              []string{"new-customer"},
			CreatedAt:         ts("2024-01-10T10:15:00Z"),
			UpdatedAt:         ts("2024-01-16T11:30:00Z"),
		},
	}
}

func SeedOrders() []types.Order {
	johnAddr := types.OrderAddress{FirstName: "John", LastName: "Doe", Address: "123 Main Street", City: "New York", State: "NY", ZipCode: "10001", Country: "US"}
	janeAddr := types.OrderAddress{FirstName: "Jane", LastName: "Smith", Address: "456 Oak Avenue", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "US"}
	mikeAddr := types.OrderAddress{FirstName: "Mike", LastName: "Johnson", Address: "789 Pine Street", City: "Chicago", State: "IL", ZipCode: "60601", Country: "US"}

	return []types.Order{
		{
			ID:          1,
			OrderNumber: "ORD-2024-001",
			Customer:    types.OrderCustomer{ID: 1, Name: "John Doe", Email: "john@example.com", Phone: "(555) 123-4567"},
			Items: []types.OrderItem{
				{ID: 1, Name: "Premium Wireless Headphones", Price: 299, Quantity: 1, Image: "/premium-wireless-headphones.png"},
			},
			ShippingAddress: johnAddr,
			BillingAddress:  johnAddr,
			PaymentMethod:   "card",
			PaymentStatus:   types.PaymentPaid,
			Subtotal:        299,
			Shipping:        0,
			Tax:             23.92,
			Total:           322.92,
			Status:          types.OrderProcessing,
			CreatedAt:       ts("2024-01-15T10:30:00Z"),
			UpdatedAt:       ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:          2,
			OrderNumber: "ORD-2024-002",
			Customer:    types.OrderCustomer{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Phone: "(555) 987-6543"},
			Items: []types.OrderItem{
				{ID: 2, Name: "Smart Watch Pro", Price: 449, Quantity: 1, Image: "/premium-smart-watch.jpg"},
				{ID: 3, Name: "Wireless Charging Pad", Price: 59, Quantity: 2, Image: "/wireless-charging-pad.png"},
			},
			ShippingAddress: janeAddr,
			BillingAddress:  janeAddr,
			PaymentMethod:   "card",
			PaymentStatus:   types.PaymentPaid,
			Subtotal:        567,
			Shipping:        0,
			Tax:             45.36,
			Total:           612.36,
			Status:          types.OrderShipped,
			TrackingNumber:  strp("1Z999AA1234567890"),
			Notes:           "Customer requested expedited shipping",
			CreatedAt:       ts("2024-01-14T16:45:00Z"),
			UpdatedAt:       ts("2024-01-15T09:20:00Z"),
		},
		{
			ID:          3,
			OrderNumber: "ORD-2024-003",
			Customer:    types.OrderCustomer{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", Phone: "(555) 456-7890"},
			Items: []types.OrderItem{
				{ID: 4, Name: "Minimalist Laptop Stand", Price: 89, Quantity: 1, Image: "/minimalist-laptop-stand.png"},
			},
			ShippingAddress: mikeAddr,
			BillingAddress:  mikeAddr,
			PaymentMethod:   "card",
			PaymentStatus:   types.PaymentPaid,
			Subtotal:        89,
			Shipping:        9.99,
			Tax:             7.92,
			Total:           106.91,
			Status:          types.OrderCompleted,
			CreatedAt:       ts("2024-01-13T14:20:00Z"),
			UpdatedAt:       ts("2024-01-16T11:30:00Z"),
		},
	}
}

func SeedProducts() []types.Product {
	return []types.Product{
		{
			ID:            1,
			Name:          "Premium Wireless Headphones",
			Price:         299,
			OriginalPrice: floatp(399),
			Description:   "Experience premium audio quality with our flagship wireless headphones.",
			Category:      "Electronics",
			Images:        []string{"/premium-wireless-headphones.png"},
			Rating:        4.8,
			Reviews:       124,
			Badge:         "Best Seller",
			InStock:       true,
			StockCount:    15,
			Features:      []string{"Active Noise Cancellation", "30-hour battery life", "Premium leather ear cups"},
			Specifications: map[string]string{
				"Driver Size":        "40mm",
				"Frequency Response": "20Hz - 20kHz",
				"Weight":             "250g",
			},
			CreatedAt: ts("2024-01-05T09:00:00Z"),
			UpdatedAt: ts("2024-01-05T09:00:00Z"),
		},
		{
			ID:          2,
			Name:        "Smart Watch Pro",
			Price:       449,
			Description: "Advanced smartwatch with health monitoring and premium design.",
			Category:    "Electronics",
			Images:      []string{"/premium-smart-watch.jpg"},
			Rating:      4.9,
			Reviews:     89,
			Badge:       "New",
			InStock:     true,
			StockCount:  8,
			Features:    []string{"Health monitoring", "GPS tracking", "Water resistant"},
			Specifications: map[string]string{
				"Display":      "1.4 inch OLED",
				"Battery":      "7 days",
				"Water Rating": "50m",
			},
			CreatedAt: ts("2024-01-08T09:00:00Z"),
			UpdatedAt: ts("2024-01-08T09:00:00Z"),
		},
		{
			ID:          3,
			Name:        "Minimalist Laptop Stand",
			Price:       89,
			Description: "Ergonomic aluminum laptop stand for a cleaner desk setup.",
			Category:    "Accessories",
			Images:      []string{"/minimalist-laptop-stand.png"},
			Rating:      4.7,
			Reviews:     156,
			InStock:     true,
			StockCount:  32,
			Features:    []string{"Aluminum body", "Adjustable height", "Cable management"},
			Specifications: map[string]string{
				"Material":   "Aluminum",
				"Max Load":   "10kg",
				"Compatible": "11-17 inch laptops",
			},
			CreatedAt: ts("2024-01-03T09:00:00Z"),
			UpdatedAt: ts("2024-01-03T09:00:00Z"),
		},
		{
			ID:            4,
			Name:          "Wireless Charging Pad",
			Price:         59,
			OriginalPrice: floatp(79),
			Description:   "Fast wireless charging pad with ambient light ring.",
			Category:      "Accessories",
			Images:        []string{"/wireless-charging-pad.png"},
			Rating:        4.5,
			Reviews:       203,
			InStock:       true,
			StockCount:    54,
			Features:      []string{"15W fast charge", "Qi compatible", "Slim profile"},
			Specifications: map[string]string{
				"Output":    "15W",
				"Input":     "USB-C",
				"Thickness": "8mm",
			},
			CreatedAt: ts("2024-01-02T09:00:00Z"),
			UpdatedAt: ts("2024-01-02T09:00:00Z"),
		},
	}
}

func SeedSubscriptions() []types.Subscription {
	return []types.Subscription{
		{
			ID:                 1,
			UserID:             1,
			PlanName:           "Professional",
			Status:             types.SubscriptionActive,
			CurrentPeriodStart: ts("2024-01-01T00:00:00Z"),
			CurrentPeriodEnd:   ts("2024-02-01T00:00:00Z"),
			Amount:             19,
			Currency:           "USD",
			Interval:           "month",
			CreatedAt:          ts("2024-01-01T00:00:00Z"),
			UpdatedAt:          ts("2024-01-01T00:00:00Z"),
		},
	}
}

// SeedUsers returns the demo accounts, both with password "password123".
// Hashes are computed at seed time so the demo credential lives in exactly
// one place.
func SeedUsers() []types.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic("store: seed password hash: " + err.Error())
	}
	return []types.User{
		{
			ID:           1,
			Email:        "admin@taskflow.com",
			PasswordHash: string(hash),
			FirstName:    "Admin",
			LastName:     "User",
			Role:         types.RoleAdmin,
			CreatedAt:    ts("2024-01-01T00:00:00Z"),
		},
		{
			ID:           2,
			Email:        "user@taskflow.com",
			PasswordHash: string(hash),
			FirstName:    "John",
			LastName:     "Doe",
			Role:         types.RoleUser,
			CreatedAt:    ts("2024-01-01T00:00:00Z"),
		},
	}
}
