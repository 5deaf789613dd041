package subscriptions

import (
	"fmt"
	"strings"
)

type CreateSubscriptionRequest struct {
	UserID          int    `json:"userId"`
	PlanName        string `json:"planName"`
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
}

type UpdateSubscriptionRequest struct {
	PlanName          *string `json:"planName"`
	Status            *string `json:"status"`
	CancelAtPeriodEnd *bool   `json:"cancelAtPeriodEnd"`
}

func ValidateCreateSubscription(r *CreateSubscriptionRequest) error {
	if r.UserID <= 0 {
		return fmt.Errorf("userId is required")
	}
	if strings.TrimSpace(r.PlanName) == "" {
		return fmt.Errorf("planName is required")
	}
	return nil
}
