package customers

import (
	"fmt"
	"strings"

	"github.com/taskflow/storefront/internal/types"
)

type CreateCustomerRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	DateOfBirth string   `json:"dateOfBirth,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Status      string   `json:"status,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateCustomerRequest is a shallow-merge patch: nil fields keep their
// current values. Stored aggregates and order history are not patchable.
type UpdateCustomerRequest struct {
	FirstName   *string          `json:"firstName"`
	LastName    *string          `json:"lastName"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"phone"`
	DateOfBirth *string          `json:"dateOfBirth"`
	Gender      *string          `json:"gender"`
	Status      *string          `json:"status"`
	Addresses   *[]types.Address `json:"addresses"`
	Notes       *string          `json:"notes"`
	Tags        *[]string        `json:"tags"`
}

func ValidateCreateCustomer(r *CreateCustomerRequest) error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("lastName is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
