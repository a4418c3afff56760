package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cutdata/internal/calculator"
	"cutdata/internal/config"
	"cutdata/internal/observability"
	"cutdata/internal/process"
	"cutdata/internal/ratelimit"
	"cutdata/internal/server"
	"cutdata/internal/tooldata"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	err = observability.InitLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Feed data is compiled in; a bad table is a build defect.
	if err := tooldata.Validate(); err != nil {
		observability.Logger.Fatal("feed data failed validation", zap.Error(err))
	}

	// Tracing, metrics, logs
	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("telemetry setup failed", zap.Error(err))
	}
	defer shutdown(ctx)

	// Router
	calc := process.New(cfg.Settings())
	limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	router := server.NewRouter(calculator.NewHandler(calc), limiter)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.Float64("production_factor", cfg.ProductionFactor),
			zap.Float64("default_max_rpm", cfg.DefaultMaxRPM),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("shutdown failed", zap.Error(err))
	}
}
