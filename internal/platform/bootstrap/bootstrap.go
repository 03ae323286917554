// Package bootstrap turns a configuration profile into the ready-to-use
// platform pieces a caller needs to build a category service: the loaded
// config, a structured logger, and telemetry providers with their metric
// instruments.
//
//	rt, err := bootstrap.Init(ctx, "local")
//	defer rt.Shutdown(ctx)
//	svc := app.NewCategoryService(gateway, rt.Logger, rt.ServiceOptions()...)
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/catalog-admin/internal/app"
	"github.com/jsamuelsen11/catalog-admin/internal/domain/validation"
	"github.com/jsamuelsen11/catalog-admin/internal/platform/config"
	"github.com/jsamuelsen11/catalog-admin/internal/platform/logging"
	"github.com/jsamuelsen11/catalog-admin/internal/platform/telemetry"
)

// Runtime bundles everything Init set up. Shutdown must be called once.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *telemetry.Metrics

	otel    *otelProviders
	logFile io.Closer
}

// Option configures Init.
type Option func(*initOptions)

type initOptions struct {
	configOpts []config.Option
	stderr     io.Writer
}

// WithConfigOptions forwards options to config.Load.
func WithConfigOptions(opts ...config.Option) Option {
	return func(o *initOptions) {
		o.configOpts = append(o.configOpts, opts...)
	}
}

// WithStderr sets where logs go when no log file is configured.
func WithStderr(w io.Writer) Option {
	return func(o *initOptions) {
		o.stderr = w
	}
}

// Init loads the profile's configuration and builds the logger and
// telemetry it describes.
func Init(ctx context.Context, profile string, opts ...Option) (*Runtime, error) {
	o := &initOptions{stderr: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.Load(profile, o.configOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rt := &Runtime{Config: cfg}

	out := o.stderr
	if cfg.Log.File != "" {
		f := logging.OpenFile(cfg.Log.File, logging.Rotation{
			MaxSizeMB:  cfg.Log.Rotation.MaxSizeMB,
			MaxBackups: cfg.Log.Rotation.MaxBackups,
			MaxAgeDays: cfg.Log.Rotation.MaxAgeDays,
			Compress:   cfg.Log.Rotation.Compress,
		})
		rt.logFile = f
		out = f
	}
	rt.Logger = logging.New(cfg.Log.Level, cfg.Log.Format, out)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		if rt.logFile != nil {
			_ = rt.logFile.Close()
		}
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}
	rt.otel = otel
	rt.Metrics = otel.metrics

	rt.Logger.InfoContext(ctx, "runtime initialized",
		slog.String("profile", profile),
		slog.String("service", cfg.Service.Name),
		slog.String("validation_mode", cfg.Validation.Mode),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	return rt, nil
}

// ServiceOptions returns the app.CategoryService options implied by the
// runtime: metrics, tracer provider and validation mode.
func (r *Runtime) ServiceOptions() []app.Option {
	opts := []app.Option{
		app.WithMetrics(r.Metrics),
		app.WithValidationMode(validation.Mode(r.Config.Validation.Mode)),
	}
	if r.otel.tracer != nil {
		opts = append(opts, app.WithTracerProvider(r.otel.tracer))
	}
	return opts
}

// Shutdown flushes telemetry and closes the log file. Nil-safe.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs []error
	if r.otel != nil {
		errs = append(errs, r.otel.Shutdown(ctx))
	}
	if r.logFile != nil {
		if err := r.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	}
	return errors.Join(errs...)
}

// otelProviders bundles OpenTelemetry provider lifecycle. Providers are nil
// when telemetry is disabled; metrics are then no-op instruments.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{metrics: telemetry.NoopMetrics()}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Service.Name)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}
