package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskflow/storefront/internal/shared"
	"github.com/taskflow/storefront/internal/types"
	"github.com/taskflow/storefront/internal/utils"
)

// Controller handles HTTP requests for authentication
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	if err := ValidateLogin(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	response, err := ctrl.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{
				Error:     "Unauthorized",
				Message:   err.Error(),
				Timestamp: time.Now().UTC(),
			})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (ctrl *Controller) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	if err := ValidateSignup(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	response, err := ctrl.service.Signup(req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			badRequest(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (ctrl *Controller) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid request", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	if err := ValidateRefresh(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	response, err := ctrl.service.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{
			Error:     "Unauthorized",
			Message:   "invalid refresh token",
			Timestamp: time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// Me returns the profile behind the bearer token.
func (ctrl *Controller) Me(c *gin.Context) {
	claims, ok := c.MustGet(shared.ClaimsKey).(*shared.Claims)
	if !ok {
		internalError(c, errors.New("missing auth claims"))
		return
	}
	profile, err := ctrl.service.Profile(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:     "Not Found",
			Message:   "User not found",
			Timestamp: time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{
		Error:     "Bad Request",
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
