package types

import (
	"time"
)

type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Description   string   `json:"description"`

	// Category is free text; the storefront UI draws from a fixed set but
	// the server does not enforce membership.
	Category string   `json:"category"`
	Images   []string `json:"images"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Badge    string   `json:"badge,omitempty"`

	// InStock and StockCount are stored independently and are not
	// cross-validated against each other.
	InStock    bool `json:"inStock"`
	StockCount int  `json:"stockCount"`

	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
