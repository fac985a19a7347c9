package handler

import (
	"shop-payment-reconciler/internal/adapter/http/middleware"
	"shop-payment-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ReconcileSvc   ports.ReconciliationService
	ChannelSvc     ports.ChannelService
	TokenSvc       ports.TokenService
	CallbackSecret string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Aggregator callbacks (shared-secret query param) ---
	callbackHandler := NewCallbackHandler(deps.ReconcileSvc)
	callbacks := v1.Group("/callbacks", middleware.CallbackAuth(deps.CallbackSecret, deps.Logger))
	{
		callbacks.POST("/payhero", callbackHandler.PayheroCallback)
	}

	// --- Admin routes (JWT-authenticated) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	channelHandler := NewChannelHandler(deps.ChannelSvc)
	channels := v1.Group("/channels", jwtAuth)
	{
		channels.POST("/activate", channelHandler.ActivateChannel)
	}

	return r
}
