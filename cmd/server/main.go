package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ayash-Bera/rag-gateway/internal/api"
	"github.com/Ayash-Bera/rag-gateway/internal/api/handlers"
	"github.com/Ayash-Bera/rag-gateway/internal/config"
	"github.com/Ayash-Bera/rag-gateway/internal/database"
	"github.com/Ayash-Bera/rag-gateway/internal/health"
	"github.com/Ayash-Bera/rag-gateway/internal/services"
	"github.com/Ayash-Bera/rag-gateway/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.NewLogger(cfg.Log.Level)
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var sink services.FeedbackSink = services.NewLogSink(logger)
	var redisPinger health.Pinger

	if cfg.FeedbackPublishingEnabled() {
		publisher, err := database.NewFeedbackPublisher(cfg.Redis.URL, cfg.Redis.Channel, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize feedback publisher")
		}
		defer publisher.Close()

		sink = services.MultiSink{sink, publisher}
		redisPinger = publisher
	}

	gateway := services.NewGatewayService(
		services.PlaceholderRetriever{},
		services.TemplateGenerator{},
		sink,
		logger,
	)

	router := api.NewRouter(
		api.RouterConfig{CORSOrigins: cfg.Server.CORSOrigins},
		handlers.NewGatewayHandler(gateway, logger),
		handlers.NewHealthHandler(health.NewChecker(cfg.App.Name, cfg.App.Version, redisPinger, logger)),
		logger,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":     srv.Addr,
			"version":  cfg.App.Version,
			"feedback": cfg.FeedbackPublishingEnabled(),
		}).Info("Starting gateway server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Fatal("Server failed")
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down gateway server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}

	logger.Info("Gateway server stopped")
}
