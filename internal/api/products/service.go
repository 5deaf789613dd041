package products

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

type Service struct {
	products *store.Collection[types.Product]
}

func NewService(products *store.Collection[types.Product]) *Service {
	return &Service{products: products}
}

func pipelineConfig() query.Config[types.Product] {
	return query.Config[types.Product]{
		SearchFields: []func(types.Product) string{
			func(p types.Product) string { return p.Name },
			func(p types.Product) string { return p.Description },
		},
		Filters: map[string]func(types.Product, string) bool{
			"category": func(p types.Product, v string) bool { return strings.EqualFold(p.Category, v) },
		},
		Sorts: map[string]func(a, b types.Product) bool{
			"price-low":  func(a, b types.Product) bool { return a.Price < b.Price },
			"price-high": func(a, b types.Product) bool { return a.Price > b.Price },
			"rating":     func(a, b types.Product) bool { return a.Rating > b.Rating },
			"newest":     func(a, b types.Product) bool { return a.CreatedAt.After(b.CreatedAt) },
		},
		// No default: the storefront shows catalog order unless asked.
	}
}

func (s *Service) List(p query.Params) []types.Product {
	return query.Apply(s.products.List(), p, pipelineConfig())
}

func (s *Service) Get(id int) (types.Product, error) {
	product, ok := s.products.Get(id)
	if !ok {
		return types.Product{}, store.ErrNotFound
	}
	return product, nil
}

func (s *Service) Create(req CreateProductRequest) types.Product {
	product := s.products.Insert(func(id int, now time.Time) types.Product {
		return types.Product{
			ID:             id,
			Name:           req.Name,
			Price:          req.Price,
			OriginalPrice:  req.OriginalPrice,
			Description:    req.Description,
			Category:       req.Category,
			Images:         req.Images,
			Badge:          req.Badge,
			InStock:        req.InStock,
			StockCount:     req.StockCount,
			Features:       req.Features,
			Specifications: req.Specifications,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	})
	utils.Zlog.Info("Product created",
		zap.Int("productId", product.ID),
		zap.String("name", product.Name))
	return product
}

func (s *Service) Update(id int, req UpdateProductRequest) (types.Product, error) {
	product, ok := s.products.Update(id, func(current types.Product, now time.Time) types.Product {
		merged := current
		if req.Name != nil {
			merged.Name = *req.Name
		}
		if req.Price != nil {
			merged.Price = *req.Price
		}
		if req.OriginalPrice != nil {
			merged.OriginalPrice = req.OriginalPrice
		}
		if req.Description != nil {
			merged.Description = *req.Description
		}
		if req.Category != nil {
			merged.Category = *req.Category
		}
		if req.Images != nil {
			merged.Images = *req.Images
		}
		if req.Badge != nil {
			merged.Badge = *req.Badge
		}
		if req.InStock != nil {
			merged.InStock = *req.InStock
		}
		if req.StockCount != nil {
			merged.StockCount = *req.StockCount
		}
		if req.Features != nil {
			merged.Features = *req.Features
		}
		if req.Specifications != nil {
			merged.Specifications = *req.Specifications
		}
		merged.UpdatedAt = now
		return merged
	})
	if !ok {
		return types.Product{}, store.ErrNotFound
	}
	utils.Zlog.Info("Product updated", zap.Int("productId", id))
	return product, nil
}

func (s *Service) Delete(id int) error {
	if !s.products.Remove(id) {
		return store.ErrNotFound
	}
	utils.Zlog.Info("Product deleted", zap.Int("productId", id))
	return nil
}
