package main

import (
	"context"
	"errors"
	"fmt"

	"cutdata/internal/calculator"
	"cutdata/internal/config"
	"cutdata/internal/observability"
)

// initMetrics initialises the metric provider and the instruments of the
// cutting data endpoints.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}

// initTelemetry sets up tracing, metrics and, when enabled, OTLP log export.
// The returned function shuts them down in reverse order.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	shutdowns = append(shutdowns, traceShutdown)

	metricShutdown, err := initMetrics(ctx)
	if err != nil {
		shutdown(ctx)
		return nil, fmt.Errorf("metrics: %w", err)
	}
	shutdowns = append(shutdowns, metricShutdown)

	if cfg.LogsEnabled {
		logShutdown, err := observability.InitLogging(ctx)
		if err != nil {
			shutdown(ctx)
			return nil, fmt.Errorf("logging: %w", err)
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	return shutdown, nil
}
