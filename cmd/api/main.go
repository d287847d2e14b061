// Package main is the entry point for the itinerary PDF API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/vigovia/itinerary-pdf/internal/config"
	"github.com/vigovia/itinerary-pdf/internal/handler"
	"github.com/vigovia/itinerary-pdf/internal/middleware"
	"github.com/vigovia/itinerary-pdf/internal/render"
	"github.com/vigovia/itinerary-pdf/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotenv(); err != nil {
		slog.Error("dotenv error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before the JSON logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Match GOMAXPROCS to the container CPU quota.
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug("maxprocs", "detail", fmt.Sprintf(format, args...))
	})); err != nil {
		logger.Warn("maxprocs", "error", err)
	}

	// --- Rendering --------------------------------------------------------
	opts := render.DefaultOptions()
	opts.Compress = cfg.PDFCompress
	renderer := render.NewRenderer(opts, logger)
	itineraries := service.NewItineraryService(renderer, logger)

	// --- Router -----------------------------------------------------------
	routerCfg := handler.RouterConfig{
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.RateLimitRPS > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	r := handler.NewRouter(handler.NewServer(itineraries, logger), routerCfg)

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout leaves room for rendering long itineraries.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "rate_limit_rps", cfg.RateLimitRPS)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
