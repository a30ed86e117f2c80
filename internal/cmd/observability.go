package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/felixgeelhaar/accountctl/internal/config"
	"github.com/felixgeelhaar/accountctl/internal/log"
	"github.com/felixgeelhaar/accountctl/internal/metrics"
	"github.com/felixgeelhaar/accountctl/internal/telemetry"
	"github.com/felixgeelhaar/accountctl/internal/version"
)

// flushTimeout bounds the telemetry flush and the metrics push at exit.
const flushTimeout = 5 * time.Second

// setupLogging builds the process logger. The --log-level flag wins over
// logging.level. Logs always go to w (stderr) so stdout stays parseable.
func setupLogging(cfg *config.Config, flagLevel string, w io.Writer) *log.Logger {
	level := cfg.Logging.Level
	if flagLevel != "" {
		level = flagLevel
	}

	logger := log.New(log.Config{
		Level:          log.ParseLevel(level),
		Format:         log.ParseFormat(cfg.Logging.Format),
		Output:         log.NewOutput(w),
		AddSource:      false,
		ServiceName:    "accountctl",
		ServiceVersion: version.GetInfo().Version,
	})

	log.SetDefaultLogger(logger)
	return logger
}

// setupTelemetry starts tracing when telemetry.enabled is set and returns
// the flush function. Failures only disable tracing.
func setupTelemetry(ctx context.Context, cfg *config.Config, logger *log.Logger, getenv func(string) string) func() {
	if !cfg.Telemetry.Enabled {
		return func() {}
	}

	telemCfg := telemetry.Config{
		ServiceName:    "accountctl",
		ServiceVersion: version.GetInfo().Version,
		Environment:    telemetryEnvironment(getenv),
		Enabled:        true,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     clampSampleRate(cfg.Telemetry.SampleRate),
	}

	shutdown, err := telemetry.InitProvider(ctx, telemCfg)
	if err != nil {
		logger.Warn("Failed to initialize telemetry", "error", err)
		return func() {}
	}

	logger.Info("Telemetry enabled",
		"endpoint", telemCfg.Endpoint,
		"sample_rate", telemCfg.SampleRate,
	)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush telemetry", "error", err)
		}
	}
}

func telemetryEnvironment(getenv func(string) string) string {
	if env := getenv("ACCOUNTCTL_ENV"); env != "" {
		return env
	}
	return "cli"
}

func clampSampleRate(value float64) float64 {
	switch {
	case value <= 0:
		return 0.0
	case value >= 1:
		return 1.0
	default:
		return value
	}
}

// pushMetrics sends the run's metrics to the configured pushgateway.
func pushMetrics(cfg *config.Config, reg prometheus.Gatherer, logger *log.Logger) {
	if cfg.Metrics.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	instance, _ := os.Hostname()
	if err := metrics.Push(ctx, cfg.Metrics.PushgatewayURL, instance, reg); err != nil {
		logger.Warn("Failed to push metrics", "error", err)
	}
}
