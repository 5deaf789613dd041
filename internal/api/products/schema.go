package products

import (
	"fmt"
	"strings"
)

type CreateProductRequest struct {
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Description    string            `json:"description,omitempty"`
	Category       string            `json:"category,omitempty"`
	Images         []string          `json:"images,omitempty"`
	Badge          string            `json:"badge,omitempty"`
	InStock        bool              `json:"inStock,omitempty"`
	StockCount     int               `json:"stockCount,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// UpdateProductRequest is a shallow-merge patch; rating and review counts
// are derived from storefront activity and cannot be set here.
type UpdateProductRequest struct {
	Name           *string            `json:"name"`
	Price          *float64           `json:"price"`
	OriginalPrice  *float64           `json:"originalPrice"`
	Description    *string            `json:"description"`
	Category       *string            `json:"category"`
	Images         *[]string          `json:"images"`
	Badge          *string            `json:"badge"`
	InStock        *bool              `json:"inStock"`
	StockCount     *int               `json:"stockCount"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
}

func ValidateCreateProduct(r *CreateProductRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
