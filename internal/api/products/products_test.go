package products

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
)

func setup() (*gin.Engine, *store.Collection[types.Product]) {
	gin.SetMode(gin.TestMode)
	products := store.NewCollection(func(p types.Product) int { return p.ID }, store.SeedProducts()...)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), products)
	return engine, products
}

func do(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListKeepsCatalogOrderWithoutSort(t *testing.T) {
	engine, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/products", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 4, resp.Total)
	for i, product := range resp.Products {
		assert.Equal(t, i+1, product.ID)
	}
}

func TestListSearchMatchesDescription(t *testing.T) {
	engine, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/products?search=ergonomic", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Minimalist Laptop Stand", resp.Products[0].Name)
}

func TestListCategoryFilterIgnoresCase(t *testing.T) {
	engine, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/products?category=accessories", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	for _, product := range resp.Products {
		assert.Equal(t, "Accessories", product.Category)
	}
}

func TestListSortPriceLow(t *testing.T) {
	engine, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/products?sortBy=price-low", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 4, resp.Total)
	assert.Equal(t, 59.0, resp.Products[0].Price)
	assert.Equal(t, 449.0, resp.Products[3].Price)
}

func TestListSortRating(t *testing.T) {
	engine, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/products?sortBy=rating", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Smart Watch Pro", resp.Products[0].Name)
}

func TestCreateStartsUnrated(t *testing.T) {
	engine, _ := setup()

	w := do(engine, http.MethodPost, "/api/v1/products", CreateProductRequest{
		Name:       "Desk Mat XL",
		Price:      39,
		Category:   "Accessories",
		InStock:    true,
		StockCount: 120,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product types.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, 5, product.ID)
	assert.Equal(t, 0.0, product.Rating)
	assert.Equal(t, 0, product.Reviews)
	assert.Nil(t, product.OriginalPrice)
}

func TestCreateRequiresNameAndNonNegativePrice(t *testing.T) {
	engine, products := setup()

	w := do(engine, http.MethodPost, "/api/v1/products", CreateProductRequest{Price: 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(engine, http.MethodPost, "/api/v1/products", CreateProductRequest{Name: "Negative", Price: -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 4, products.Len())
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	engine, _ := setup()

	price := 279.0
	badge := "Sale"
	w := do(engine, http.MethodPut, "/api/v1/products/1", UpdateProductRequest{
		Price: &price,
		Badge: &badge,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var product types.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, 279.0, product.Price)
	assert.Equal(t, "Sale", product.Badge)
	// Untouched fields survive the patch.
	assert.Equal(t, "Premium Wireless Headphones", product.Name)
	assert.Equal(t, 4.8, product.Rating)
	require.NotNil(t, product.OriginalPrice)
	assert.Equal(t, 399.0, *product.OriginalPrice)
}

func TestUpdateMissingProductIs404(t *testing.T) {
	engine, _ := setup()

	name := "Ghost"
	w := do(engine, http.MethodPut, "/api/v1/products/99", UpdateProductRequest{Name: &name})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRemovesProduct(t *testing.T) {
	engine, products := setup()

	w := do(engine, http.MethodDelete, "/api/v1/products/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, products.Len())

	w = do(engine, http.MethodGet, "/api/v1/products/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
