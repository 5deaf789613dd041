package subscriptions

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/query"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

// Controller handles HTTP requests for subscription management
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

type ListResponse struct {
	Subscriptions []types.Subscription `json:"subscriptions"`
	Total         int                  `json:"total"`
}

func (ctrl *Controller) List(c *gin.Context) {
	result := ctrl.service.List(query.Params{
		Filters: map[string]string{
			"userId": c.Query("userId"),
			"status": c.Query("status"),
		},
	})
	c.JSON(http.StatusOK, ListResponse{Subscriptions: result, Total: len(result)})
}

func (ctrl *Controller) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid subscription id")
		return
	}
	subscription, err := ctrl.service.Get(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	if err := ValidateCreateSubscription(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, ctrl.service.Create(req))
}

func (ctrl *Controller) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid subscription id")
		return
	}
	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	subscription, err := ctrl.service.Update(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

// Cancel soft-cancels instead of removing; the cancelled record is returned.
func (ctrl *Controller) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid subscription id")
		return
	}
	subscription, err := ctrl.service.Cancel(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, types.ErrorResponse{
		Error:     "Not Found",
		Message:   "Subscription not found",
		Timestamp: time.Now().UTC(),
	})
}
