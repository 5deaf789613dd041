package analytics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskflow/storefront/internal/types"
)

// Controller handles HTTP requests for the analytics dashboards
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) Dashboard(c *gin.Context) {
	dateRange := c.DefaultQuery("dateRange", "30d")
	dashboard := ctrl.service.Dashboard(dateRange)

	// A specific metric request returns only that section.
	if metric := c.Query("metric"); metric != "" {
		section, ok := dashboardSection(dashboard, metric)
		if !ok {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:     "Bad Request",
				Message:   "unknown metric " + metric,
				Timestamp: time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{metric: section})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func dashboardSection(d Dashboard, metric string) (interface{}, bool) {
	switch metric {
	case "overview":
		return d.Overview, true
	case "revenueData":
		return d.RevenueData, true
	case "productPerformance":
		return d.ProductPerformance, true
	case "customerSegments":
		return d.CustomerSegments, true
	case "trafficSources":
		return d.TrafficSources, true
	case "salesFunnel":
		return d.SalesFunnel, true
	}
	return nil, false
}

func (ctrl *Controller) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.service.AdminStats())
}
