package handler

import (
	"net/http"

	"shop-payment-reconciler/internal/adapter/http/dto"
	"shop-payment-reconciler/internal/adapter/http/middleware"
	"shop-payment-reconciler/internal/core/ports"
	"shop-payment-reconciler/pkg/apperror"
	"shop-payment-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChannelHandler handles channel activation endpoints.
type ChannelHandler struct {
	channelSvc ports.ChannelService
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(channelSvc ports.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelSvc: channelSvc}
}

// ActivateChannel handles POST /api/v1/channels/activate.
func (h *ChannelHandler) ActivateChannel(c *gin.Context) {
	callerID := c.GetString(middleware.CtxCallerID)
	if callerID == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ActivateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	channelID, err := h.channelSvc.ActivateChannel(c.Request.Context(), ports.ActivationRequest{
		CallerID:   callerID,
		ShopID:     req.ShopID,
		Type:       req.Type,
		ShortCode:  req.ShortCode,
		TillNumber: req.TillNumber,
		ShopName:   req.ShopName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ActivateChannelResponse{
		Success:   true,
		ChannelID: channelID,
	})
}

// HealthCheck handles GET /health, verifying all backing dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
