package handlers

import (
	"net/http"

	"github.com/Ayash-Bera/rag-gateway/internal/health"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	checker *health.Checker
}

func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// HandleHealth reports 200 when healthy and 503 otherwise.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	report := h.checker.CheckAll(c.Request.Context())

	code := http.StatusOK
	if report.Status != health.StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}
