package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quiverArcade/app/echo-server/router"
	"quiverArcade/internal/middleware"
	"quiverArcade/internal/rest"
	"quiverArcade/internal/session"
	"quiverArcade/pkg/config"
	"quiverArcade/pkg/logger"
	"quiverArcade/pkg/metrics"
)

// sessionMaxIdle is how long an untouched demo session survives before the
// sweeper discards it.
const sessionMaxIdle = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Quiver Arcade", "version", cfg.App.Version)

	metrics.Init()

	// Init store
	store := session.NewStore()

	// Init handlers
	productHandler := rest.NewProductHandler()
	sessionHandler := rest.NewSessionHandler(store, rest.SessionOptions{
		DefaultSeed:     cfg.Sim.DefaultSeed,
		TickCap:         cfg.Sim.TickCap,
		ScoreSigningKey: cfg.Share.ScoreSigningKey,
	})
	replayHandler := rest.NewReplayHandler(store, cfg.Share.ReplayCodeKey)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler)
	router.SetupSessionRoutes(api, sessionHandler)
	router.SetupReplayRoutes(api, replayHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Idle session sweeper
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-sweeperCtx.Done():
				return
			case <-ticker.C:
				if removed := store.Sweep(sessionMaxIdle); removed > 0 {
					logger.Info("Swept idle sessions", "removed", removed, "live", store.Len())
				}
			}
		}
	}()

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
