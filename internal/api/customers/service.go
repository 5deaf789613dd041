package customers

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

type Service struct {
	customers *store.Collection[types.Customer]
}

func NewService(customers *store.Collection[types.Customer]) *Service {
	return &Service{customers: customers}
}

func (s *Service) pipelineConfig() query.Config[types.Customer] {
	// Collators are not safe for concurrent use, so each request gets its own.
	collator := collate.New(language.English)
	return query.Config[types.Customer]{
		SearchFields: []func(types.Customer) string{
			func(c types.Customer) string { return c.FullName() },
			func(c types.Customer) string { return c.Email },
		},
		Filters: map[string]func(types.Customer, string) bool{
			"status": func(c types.Customer, v string) bool { return string(c.Status) == v },
		},
		Sorts: map[string]func(a, b types.Customer) bool{
			"newest":      func(a, b types.Customer) bool { return a.CreatedAt.After(b.CreatedAt) },
			"oldest":      func(a, b types.Customer) bool { return a.CreatedAt.Before(b.CreatedAt) },
			"spent-high":  func(a, b types.Customer) bool { return a.TotalSpent > b.TotalSpent },
			"spent-low":   func(a, b types.Customer) bool { return a.TotalSpent < b.TotalSpent },
			"orders-high": func(a, b types.Customer) bool { return a.TotalOrders > b.TotalOrders },
			"name": func(a, b types.Customer) bool {
				return collator.CompareString(a.FullName(), b.FullName()) < 0
			},
		},
		DefaultSort: "newest",
	}
}

func (s *Service) List(p query.Params) []types.Customer {
	return query.Apply(s.customers.List(), p, s.pipelineConfig())
}

func (s *Service) Get(id int) (types.Customer, error) {
	customer, ok := s.customers.Get(id)
	if !ok {
		return types.Customer{}, store.ErrNotFound
	}
	return customer, nil
}

func (s *Service) Create(req CreateCustomerRequest) types.Customer {
	status := types.CustomerStatus(req.Status)
	if status == "" {
		status = types.CustomerActive
	}
	customer := s.customers.Insert(func(id int, now time.Time) types.Customer {
		return types.Customer{
			ID:          id,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Phone:       req.Phone,
			DateOfBirth: req.DateOfBirth,
			Gender:      req.Gender,
			Status:      status,
			Addresses:   []types.Address{},
			Orders:      []types.OrderSummary{},
			Notes:       req.Notes,
			Tags:        req.Tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
	utils.Zlog.Info("Customer created",
		zap.Int("customerId", customer.ID),
		zap.String("email", customer.Email))
	return customer
}

func (s *Service) Update(id int, req UpdateCustomerRequest) (types.Customer, error) {
	customer, ok := s.customers.Update(id, func(current types.Customer, now time.Time) types.Customer {
		merged := current
		if req.FirstName != nil {
			merged.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			merged.LastName = *req.LastName
		}
		if req.Email != nil {
			merged.Email = *req.Email
		}
		if req.Phone != nil {
			merged.Phone = *req.Phone
		}
		if req.DateOfBirth != nil {
			merged.DateOfBirth = *req.DateOfBirth
		}
		if req.Gender != nil {
			merged.Gender = *req.Gender
		}
		if req.Status != nil {
			merged.Status = types.CustomerStatus(*req.Status)
		}
		if req.Addresses != nil {
			merged.Addresses = *req.Addresses
		}
		if req.Notes != nil {
			merged.Notes = *req.Notes
		}
		if req.Tags != nil {
			merged.Tags = *req.Tags
		}
		merged.UpdatedAt = now
		return merged
	})
	if !ok {
		return types.Customer{}, store.ErrNotFound
	}
	utils.Zlog.Info("Customer updated", zap.Int("customerId", id))
	return customer, nil
}

func (s *Service) Delete(id int) error {
	// Hard removal; related orders are intentionally left in place (no
	// referential integrity across collections).
	if !s.customers.Remove(id) {
		return store.ErrNotFound
	}
	utils.Zlog.Info("Customer deleted", zap.Int("customerId", id))
	return nil
}
