package subscriptions

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

const billingPeriod = 30 * 24 * time.Hour

// planAmount prices a plan per month. Professional is the entry paid tier;
// everything else bills at the business rate.
func planAmount(planName string) float64 {
	if planName == "Professional" {
		return 19
	}
	return 49
}

type Service struct {
	subscriptions *store.Collection[types.Subscription]
}

func NewService(subscriptions *store.Collection[types.Subscription]) *Service {
	return &Service{subscriptions: subscriptions}
}

func (s *Service) List(p query.Params) []types.Subscription {
	return query.Apply(s.subscriptions.List(), p, query.Config[types.Subscription]{
		Filters: map[string]func(types.Subscription, string) bool{
			"userId": func(sub types.Subscription, v string) bool {
				id, err := strconv.Atoi(v)
				return err == nil && sub.UserID == id
			},
			"status": func(sub types.Subscription, v string) bool { return string(sub.Status) == v },
		},
	})
}

func (s *Service) Get(id int) (types.Subscription, error) {
	subscription, ok := s.subscriptions.Get(id)
	if !ok {
		return types.Subscription{}, store.ErrNotFound
	}
	return subscription, nil
}

func (s *Service) Create(req CreateSubscriptionRequest) types.Subscription {
	subscription := s.subscriptions.Insert(func(id int, now time.Time) types.Subscription {
		return types.Subscription{
			ID:                 id,
			UserID:             req.UserID,
			PlanName:           req.PlanName,
			Status:             types.SubscriptionActive,
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   now.Add(billingPeriod),
			Amount:             planAmount(req.PlanName),
			Currency:           "USD",
			Interval:           "month",
			CreatedAt:          now,
			UpdatedAt:          now,
		}
	})
	utils.Zlog.Info("Subscription created",
		zap.Int("subscriptionId", subscription.ID),
		zap.Int("userId", subscription.UserID),
		zap.String("plan", subscription.PlanName))
	return subscription
}

func (s *Service) Update(id int, req UpdateSubscriptionRequest) (types.Subscription, error) {
	subscription, ok := s.subscriptions.Update(id, func(current types.Subscription, now time.Time) types.Subscription {
		merged := current
		if req.PlanName != nil {
			merged.PlanName = *req.PlanName
			merged.Amount = planAmount(merged.PlanName)
		}
		if req.Status != nil {
			merged.Status = types.SubscriptionStatus(*req.Status)
		}
		if req.CancelAtPeriodEnd != nil {
			merged.CancelAtPeriodEnd = *req.CancelAtPeriodEnd
		}
		merged.UpdatedAt = now
		return merged
	})
	if !ok {
		return types.Subscription{}, store.ErrNotFound
	}
	utils.Zlog.Info("Subscription updated", zap.Int("subscriptionId", id))
	return subscription, nil
}

// Cancel is the delete operation for subscriptions: the record stays in the
// collection with status flipped to cancelled.
func (s *Service) Cancel(id int) (types.Subscription, error) {
	subscription, ok := s.subscriptions.Update(id, func(current types.Subscription, now time.Time) types.Subscription {
		merged := current
		merged.Status = types.SubscriptionCancelled
		merged.CancelAtPeriodEnd = true
		merged.UpdatedAt = now
		return merged
	})
	if !ok {
		return types.Subscription{}, store.ErrNotFound
	}
	utils.Zlog.Info("Subscription cancelled", zap.Int("subscriptionId", id))
	return subscription, nil
}
