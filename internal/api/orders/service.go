package orders

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/analytics"
	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

const (
	taxRate              = 0.08
	freeShippingMinCents = 5000 // order value qualifying for free shipping
	flatShippingCents    = 999
)

type Service struct {
	orders    *store.Collection[types.Order]
	customers *store.Collection[types.Customer]
}

func NewService(orders *store.Collection[types.Order], customers *store.Collection[types.Customer]) *Service {
	return &Service{orders: orders, customers: customers}
}

func pipelineConfig() query.Config[types.Order] {
	return query.Config[types.Order]{
		SearchFields: []func(types.Order) string{
			func(o types.Order) string { return o.OrderNumber },
			func(o types.Order) string { return o.Customer.Name },
			func(o types.Order) string { return o.Customer.Email },
		},
		Filters: map[string]func(types.Order, string) bool{
			"status": func(o types.Order, v string) bool { return string(o.Status) == v },
		},
		Sorts: map[string]func(a, b types.Order) bool{
			"newest":     func(a, b types.Order) bool { return a.CreatedAt.After(b.CreatedAt) },
			"oldest":     func(a, b types.Order) bool { return a.CreatedAt.Before(b.CreatedAt) },
			"total-high": func(a, b types.Order) bool { return a.Total > b.Total },
			"total-low":  func(a, b types.Order) bool { return a.Total < b.Total },
		},
		DefaultSort: "newest",
	}
}

func (s *Service) List(p query.Params) []types.Order {
	return query.Apply(s.orders.List(), p, pipelineConfig())
}

func (s *Service) Get(id int) (types.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return types.Order{}, store.ErrNotFound
	}
	return order, nil
}

// priceOrder derives the money fields from the line items. Totals are
// server-authoritative: client-supplied amounts are ignored. Tax applies to
// goods plus shipping.
func priceOrder(items []types.OrderItem) (subtotal, shipping, tax, total float64) {
	var subtotalCents int64
	for _, item := range items {
		subtotalCents += utils.Cents(item.Price) * int64(item.Quantity)
	}
	var shippingCents int64
	if subtotalCents < freeShippingMinCents {
		shippingCents = flatShippingCents
	}
	taxCents := int64(math.Round(float64(subtotalCents+shippingCents) * taxRate))
	totalCents := subtotalCents + shippingCents + taxCents
	return utils.Dollars(subtotalCents), utils.Dollars(shippingCents), utils.Dollars(taxCents), utils.Dollars(totalCents)
}

func (s *Service) Create(req CreateOrderRequest) types.Order {
	subtotal, shipping, tax, total := priceOrder(req.Items)

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	order := s.orders.Insert(func(id int, now time.Time) types.Order {
		return types.Order{
			ID:              id,
			OrderNumber:     fmt.Sprintf("ORD-%d-%03d", now.Year(), id),
			Customer:        req.Customer,
			Items:           req.Items,
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  req.BillingAddress,
			PaymentMethod:   paymentMethod,
			PaymentStatus:   types.PaymentPaid,
			Subtotal:        subtotal,
			Shipping:        shipping,
			Tax:             tax,
			Total:           total,
			Status:          types.OrderPending,
			Notes:           req.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	})

	s.syncCustomerAggregates(order)

	utils.Zlog.Info("Order created",
		zap.Int("orderId", order.ID),
		zap.String("orderNumber", order.OrderNumber),
		zap.Int("customerId", order.Customer.ID),
		zap.Float64("total", order.Total))
	return order
}

// syncCustomerAggregates folds a new order into the buyer's stored history
// and totals. Only creation resyncs; later order mutations leave the stored
// aggregates alone.
func (s *Service) syncCustomerAggregates(order types.Order) {
	if order.Customer.ID == 0 {
		return
	}
	_, ok := s.customers.Update(order.Customer.ID, func(current types.Customer, _ time.Time) types.Customer {
		merged := current
		merged.Orders = append(append([]types.OrderSummary{}, current.Orders...), types.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Total:       order.Total,
			Status:      order.Status,
			Date:        order.CreatedAt,
		})
		merged.TotalSpent = utils.Dollars(utils.Cents(current.TotalSpent) + utils.Cents(order.Total))
		merged.TotalOrders = current.TotalOrders + 1
		merged.AverageOrderValue = analytics.AverageOrderValue(merged.TotalSpent, merged.TotalOrders)
		orderDate := order.CreatedAt
		merged.LastOrderDate = &orderDate
		merged.UpdatedAt = order.CreatedAt
		return merged
	})
	if !ok {
		utils.Zlog.Warn("Order references unknown customer, aggregates not synced",
			zap.Int("orderId", order.ID),
			zap.Int("customerId", order.Customer.ID))
	}
}

func (s *Service) Update(id int, req UpdateOrderRequest) (types.Order, error) {
	order, ok := s.orders.Update(id, func(current types.Order, now time.Time) types.Order {
		merged := current
		if req.Status != nil {
			merged.Status = types.OrderStatus(*req.Status)
		}
		if req.PaymentStatus != nil {
			merged.PaymentStatus = types.PaymentStatus(*req.PaymentStatus)
		}
		if req.PaymentMethod != nil {
			merged.PaymentMethod = *req.PaymentMethod
		}
		if req.TrackingNumber != nil {
			merged.TrackingNumber = req.TrackingNumber
		}
		if req.Notes != nil {
			merged.Notes = *req.Notes
		}
		if req.ShippingAddress != nil {
			merged.ShippingAddress = *req.ShippingAddress
		}
		if req.BillingAddress != nil {
			merged.BillingAddress = *req.BillingAddress
		}
		if req.Items != nil {
			// Changing the line items re-derives the money fields so the
			// total invariant keeps holding.
			merged.Items = *req.Items
			merged.Subtotal, merged.Shipping, merged.Tax, merged.Total = priceOrder(merged.Items)
		}
		merged.UpdatedAt = now
		return merged
	})
	if !ok {
		return types.Order{}, store.ErrNotFound
	}
	utils.Zlog.Info("Order updated", zap.Int("orderId", id))
	return order, nil
}

func (s *Service) Delete(id int) error {
	if !s.orders.Remove(id) {
		return store.ErrNotFound
	}
	utils.Zlog.Info("Order deleted", zap.Int("orderId", id))
	return nil
}
