package health

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestCheckAll_WithoutRedis(t *testing.T) {
	logger, _ := test.NewNullLogger()
	checker := NewChecker("rag-gateway", "1.0.0", nil, logger)

	report := checker.CheckAll(context.Background())
	assert.Equal(t, StatusHealthy, report.Status)
	assert.Equal(t, "rag-gateway", report.Service)
	assert.Equal(t, "1.0.0", report.Version)
	assert.Equal(t, StatusDisabled, report.Services["redis"])
	assert.NotEmpty(t, report.Timestamp)
	assert.NotEmpty(t, report.Uptime)
}

func TestCheckAll_RedisUp(t *testing.T) {
	logger, _ := test.NewNullLogger()
	checker := NewChecker("rag-gateway", "1.0.0", stubPinger{}, logger)

	report := checker.CheckAll(context.Background())
	assert.Equal(t, StatusHealthy, report.Status)
	assert.Equal(t, StatusHealthy, report.Services["redis"])
}

func TestCheckAll_RedisDown(t *testing.T) {
	logger, hook := test.NewNullLogger()
	checker := NewChecker("rag-gateway", "1.0.0", stubPinger{err: errors.New("connection refused")}, logger)

	report := checker.CheckAll(context.Background())
	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.Equal(t, StatusUnhealthy, report.Services["redis"])
	assert.NotNil(t, hook.LastEntry())
}
