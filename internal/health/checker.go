package health

import (
	"context"
	"time"

	"github.com/Ayash-Bera/rag-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker manages health checks for the gateway's optional dependencies.
type Checker struct {
	service   string
	version   string
	redis     Pinger
	logger    *logrus.Logger
	startedAt time.Time
	timeout   time.Duration
}

// NewChecker builds a checker. redis may be nil when feedback publishing is disabled.
func NewChecker(service, version string, redis Pinger, logger *logrus.Logger) *Checker {
	return &Checker{
		service:   service,
		version:   version,
		redis:     redis,
		logger:    logger,
		startedAt: time.Now(),
		timeout:   2 * time.Second,
	}
}

// CheckRedis checks the feedback broker, if one is configured.
func (h *Checker) CheckRedis(ctx context.Context) string {
	if h.redis == nil {
		return StatusDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	if err := h.redis.Ping(ctx); err != nil {
		h.logger.WithError(err).WithField("response_time_ms", time.Since(start).Milliseconds()).
			Error("Redis health check failed")
		return StatusUnhealthy
	}
	return StatusHealthy
}

// CheckAll performs health checks on all dependencies.
func (h *Checker) CheckAll(ctx context.Context) models.HealthResponse {
	services := map[string]string{
		"redis": h.CheckRedis(ctx),
	}

	overall := StatusHealthy
	for _, status := range services {
		if status == StatusUnhealthy {
			overall = StatusUnhealthy
			break
		}
	}

	return models.HealthResponse{
		Status:    overall,
		Service:   h.service,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Services:  services,
	}
}
