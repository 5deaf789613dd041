package orders

import (
	"fmt"

	"github.com/taskflow/storefront/internal/types"
)

type CreateOrderRequest struct {
	Customer        types.OrderCustomer `json:"customer"`
	Items           []types.OrderItem   `json:"items"`
	ShippingAddress types.OrderAddress  `json:"shippingAddress"`
	BillingAddress  types.OrderAddress  `json:"billingAddress"`
	PaymentMethod   string              `json:"paymentMethod,omitempty"`
	Notes           string              `json:"notes,omitempty"`
}

// UpdateOrderRequest is a shallow-merge patch. Money fields are not
// patchable directly; sending items re-derives them server-side.
type UpdateOrderRequest struct {
	Status          *string              `json:"status"`
	PaymentStatus   *string              `json:"paymentStatus"`
	PaymentMethod   *string              `json:"paymentMethod"`
	TrackingNumber  *string              `json:"trackingNumber"`
	Notes           *string              `json:"notes"`
	Items           *[]types.OrderItem   `json:"items"`
	ShippingAddress *types.OrderAddress  `json:"shippingAddress"`
	BillingAddress  *types.OrderAddress  `json:"billingAddress"`
}

func ValidateCreateOrder(r *CreateOrderRequest) error {
	if len(r.Items) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	for i, item := range r.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("item at index %d must have a positive quantity", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("item at index %d must not have a negative price", i)
		}
	}
	if r.Customer.Name == "" && r.Customer.ID == 0 {
		return fmt.Errorf("customer is required")
	}
	return nil
}

func ValidateUpdateOrder(r *UpdateOrderRequest) error {
	if r.Status != nil {
		switch types.OrderStatus(*r.Status) {
		case types.OrderPending, types.OrderProcessing, types.OrderShipped, types.OrderCompleted, types.OrderCancelled:
		default:
			return fmt.Errorf("unknown order status %q", *r.Status)
		}
	}
	if r.Items != nil && len(*r.Items) == 0 {
		return fmt.Errorf("items cannot be emptied")
	}
	return nil
}
