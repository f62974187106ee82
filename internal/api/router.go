package api

import (
	"github.com/Ayash-Bera/rag-gateway/internal/api/handlers"
	"github.com/Ayash-Bera/rag-gateway/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	CORSOrigins []string
}

// NewRouter wires the gateway routes and middleware onto a fresh gin engine.
func NewRouter(
	cfg RouterConfig,
	gatewayHandler *handlers.GatewayHandler,
	healthHandler *handlers.HealthHandler,
	logger *logrus.Logger,
) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.SecurityHeaders(),
	)

	r.POST("/query", gatewayHandler.HandleQuery)
	r.POST("/feedback", gatewayHandler.HandleFeedback)

	r.GET("/health", healthHandler.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
