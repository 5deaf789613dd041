package customers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/store"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

// Controller handles HTTP requests for the customer back office
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

type ListResponse struct {
	Customers []types.Customer `json:"customers"`
	Total     int              `json:"total"`
}

func (ctrl *Controller) List(c *gin.Context) {
	result := ctrl.service.List(query.Params{
		Search:  c.Query("search"),
		Filters: map[string]string{"status": c.Query("status")},
		SortBy:  c.DefaultQuery("sortBy", "newest"),
	})
	c.JSON(http.StatusOK, ListResponse{Customers: result, Total: len(result)})
}

func (ctrl *Controller) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid customer id")
		return
	}
	customer, err := ctrl.service.Get(id)
	if err != nil {
		notFound(c, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	if err := ValidateCreateCustomer(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, ctrl.service.Create(req))
}

func (ctrl *Controller) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid customer id")
		return
	}
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	customer, err := ctrl.service.Update(id, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c, "Customer not found")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctrl *Controller) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid customer id")
		return
	}
	if err := ctrl.service.Delete(id); err != nil {
		notFound(c, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Customer deleted successfully"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, types.ErrorResponse{
		Error:     "Not Found",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func internalError(c *gin.Context, err error) {
	utils.Zlog.Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		Error:     "Internal Server Error",
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	})
}
