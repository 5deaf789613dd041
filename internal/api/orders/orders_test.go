package orders

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

func setup() (*gin.Engine, *store.Collection[types.Order], *store.Collection[types.Customer]) {
	gin.SetMode(gin.TestMode)
	orders := store.NewCollection(func(o types.Order) int { return o.ID }, store.SeedOrders()...)
	customers := store.NewCollection(func(c types.Customer) int { return c.ID }, store.SeedCustomers()...)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), orders, customers)
	return engine, orders, customers
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

func TestListSearchByOrderNumber(t *testing.T) {
	engine, _, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/orders?search=ord-2024-002", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "ORD-2024-002", resp.Orders[0].OrderNumber)
}

func TestListFilterByStatus(t *testing.T) {
	engine, _, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/orders?status=shipped", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, types.OrderShipped, resp.Orders[0].Status)
}

func TestListSortTotalHigh(t *testing.T) {
	engine, _, _ := setup()

	w := do(engine, http.MethodGet, "/api/v1/orders?sortBy=total-high", nil)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, 612.36, resp.Orders[0].Total)
	assert.Equal(t, 106.91, resp.Orders[2].Total)
}

func TestCreateDerivesMoneyFieldsServerSide(t *testing.T) {
	engine, _, _ := setup()

	w := do(engine, http.MethodPost, "/api/v1/orders", CreateOrderRequest{
		Customer: types.OrderCustomer{ID: 1, Name: "John Doe", Email: "john@example.com"},
		Items: []types.OrderItem{
			{ID: 1, Name: "Premium Wireless Headphones", Price: 299, Quantity: 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order types.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 4, order.ID)
	assert.Equal(t, 299.0, order.Subtotal)
	assert.Equal(t, 0.0, order.Shipping) // free above the threshold
	assert.Equal(t, 23.92, order.Tax)
	assert.Equal(t, 322.92, order.Total)
	assert.Equal(t, types.OrderPending, order.Status)
	assert.Equal(t, types.PaymentPaid, order.PaymentStatus)
	assert.Regexp(t, `^ORD-\d{4}-004$`, order.OrderNumber)
}

func TestCreateChargesFlatShippingUnderThreshold(t *testing.T) {
	engine, _, _ := setup()

	w := do(engine, http.MethodPost, "/api/v1/orders", CreateOrderRequest{
		Customer: types.OrderCustomer{ID: 3, Name: "Mike Johnson"},
		Items: []types.OrderItem{
			{ID: 9, Name: "Sticker Pack", Price: 12.50, Quantity: 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order types.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 25.0, order.Subtotal)
	assert.Equal(t, 9.99, order.Shipping)
	// Tax applies to goods plus shipping.
	assert.Equal(t, 2.80, order.Tax)
	assert.Equal(t, 37.79, order.Total)
	assert.Equal(t, order.Total, order.Subtotal+order.Shipping+order.Tax)
}

func TestCreateSyncsCustomerAggregates(t *testing.T) {
	engine, _, customers := setup()

	w := do(engine, http.MethodPost, "/api/v1/orders", CreateOrderRequest{
		Customer: types.OrderCustomer{ID: 1, Name: "John Doe", Email: "john@example.com"},
		Items: []types.OrderItem{
			{ID: 1, Name: "Premium Wireless Headphones", Price: 299, Quantity: 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	john, ok := customers.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, john.TotalOrders)
	assert.Equal(t, 645.84, john.TotalSpent)
	assert.Equal(t, 322.92, john.AverageOrderValue)
	require.Len(t, john.Orders, 2)
	assert.Equal(t, 4, john.Orders[1].ID)
	require.NotNil(t, john.LastOrderDate)
}

func TestCreateRejectsEmptyItems(t *testing.T) {
	engine, orders, _ := setup()

	w := do(engine, http.MethodPost, "/api/v1/orders", CreateOrderRequest{
		Customer: types.OrderCustomer{ID: 1, Name: "John Doe"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 3, orders.Len())
}

func TestUpdateStatusKeepsMoneyFields(t *testing.T) {
	engine, _, _ := setup()

	status := "shipped"
	tracking := "1Z999AA0000000000"
	w := do(engine, http.MethodPut, "/api/v1/orders/1", UpdateOrderRequest{
		Status:         &status,
		TrackingNumber: &tracking,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order types.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, types.OrderShipped, order.Status)
	require.NotNil(t, order.TrackingNumber)
	assert.Equal(t, tracking, *order.TrackingNumber)
	assert.Equal(t, 322.92, order.Total)
	assert.False(t, order.UpdatedAt.Before(order.CreatedAt))
}

func TestUpdateItemsReprices(t *testing.T) {
	engine, _, _ := setup()

	items := []types.OrderItem{
		{ID: 2, Name: "Smart Watch Pro", Price: 449, Quantity: 2},
	}
	w := do(engine, http.MethodPut, "/api/v1/orders/2", UpdateOrderRequest{Items: &items})
	require.Equal(t, http.StatusOK, w.Code)

	var order types.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 898.0, order.Subtotal)
	assert.Equal(t, 0.0, order.Shipping)
	assert.Equal(t, 71.84, order.Tax)
	assert.Equal(t, 969.84, order.Total)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	engine, _, _ := setup()

	status := "teleported"
	w := do(engine, http.MethodPut, "/api/v1/orders/1", UpdateOrderRequest{Status: &status})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMissingOrderIs404(t *testing.T) {
	engine, orders, _ := setup()
	before := orders.List()

	status := "completed"
	w := do(engine, http.MethodPut, "/api/v1/orders/77", UpdateOrderRequest{Status: &status})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before, orders.List())
}

func TestDeleteRemovesOrder(t *testing.T) {
	engine, orders, _ := setup()

	w := do(engine, http.MethodDelete, "/api/v1/orders/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, orders.Len())
}
