package types

import (
	"time"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

type AddressType string

const (
	AddressShipping AddressType = "shipping"
	AddressBilling  AddressType = "billing"
)

// Address is a saved shipping or billing address on a customer profile.
type Address struct {
	ID        int         `json:"id"`
	Type      AddressType `json:"type"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	ZipCode   string      `json:"zipCode"`
	Country   string      `json:"country"`
	IsDefault bool        `json:"isDefault"`
}

// OrderSummary is the condensed order history entry embedded in a customer.
type OrderSummary struct {
	ID          int         `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	Date        time.Time   `json:"date"`
}

type Customer struct {
	ID          int            `json:"id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	DateOfBirth string         `json:"dateOfBirth"`
	Gender      string         `json:"gender"`
	Status      CustomerStatus `json:"status"`
	Addresses   []Address      `json:"addresses"`
	Orders      []OrderSummary `json:"orders"`

	// Stored aggregates over the order history. The order service keeps
	// these in sync on order creation; other order mutations do not resync.
	TotalSpent        float64    `json:"totalSpent"`
	TotalOrders       int        `json:"totalOrders"`
	AverageOrderValue float64    `json:"averageOrderValue"`
	LastOrderDate     *time.Time `json:"lastOrderDate"`

	Notes     string    `json:"notes"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
