// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/catalog-admin/internal/domain/category"
	"github.com/jsamuelsen11/catalog-admin/internal/domain/validation"
	"github.com/jsamuelsen11/catalog-admin/internal/platform/logging"
	"github.com/jsamuelsen11/catalog-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/catalog-admin/internal/ports"
)

// tracerName scopes the spans emitted by this package.
const tracerName = "github.com/jsamuelsen11/catalog-admin/internal/app"

// Operation names used in logs, span names and metric attributes.
const (
	opCreate     = "Create"
	opGet        = "Get"
	opUpdate     = "Update"
	opActivate   = "Activate"
	opDeactivate = "Deactivate"
)

// Compile-time check that CategoryService implements ports.CategoryService.
var _ ports.CategoryService = (*CategoryService)(nil)

// CategoryService implements ports.CategoryService. It builds and transitions
// Category entities, validates them with the configured reporting policy, and
// stores them through the CategoryGateway port. Lifecycle rules live on the
// entity; this type only sequences them.
type CategoryService struct {
	gateway ports.CategoryGateway
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	mode    validation.Mode

	entityOpts []category.Option
}

// Option configures a CategoryService.
type Option func(*CategoryService)

// WithMetrics records transition and validation-failure counts on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *CategoryService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTracerProvider sets where spans go. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *CategoryService) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithValidationMode selects the reporting policy used for every validation.
// Defaults to validation.ModeNotification.
func WithValidationMode(m validation.Mode) Option {
	return func(s *CategoryService) {
		s.mode = m
	}
}

// WithClock sets the time source for categories created by the service.
func WithClock(now func() time.Time) Option {
	return func(s *CategoryService) {
		s.entityOpts = append(s.entityOpts, category.WithClock(now))
	}
}

// WithIDGenerator sets the identifier source for categories created by the
// service.
func WithIDGenerator(gen func() category.ID) Option {
	return func(s *CategoryService) {
		s.entityOpts = append(s.entityOpts, category.WithIDGenerator(gen))
	}
}

// NewCategoryService creates a CategoryService backed by gateway. A nil
// logger is replaced with one that discards output. A logger carried by the
// request context (logging.WithLogger) takes precedence over logger.
func NewCategoryService(gateway ports.CategoryGateway, logger *slog.Logger, opts ...Option) *CategoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &CategoryService{
		gateway: gateway,
		logger:  logger,
		metrics: telemetry.NoopMetrics(),
		tracer:  otel.Tracer(tracerName),
		mode:    validation.ModeNotification,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a new category, validates it and stores it.
func (s *CategoryService) Create(ctx context.Context, cmd ports.CreateCategoryCommand) (*category.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CategoryService."+opCreate)
	defer span.End()

	c := category.New(cmd.Name, cmd.Description, cmd.IsActive, s.entityOpts...)
	span.SetAttributes(telemetry.AttrCategoryID.String(c.ID().String()))

	s.log(ctx).InfoContext(ctx, "creating category", slog.Any("category", c))

	if err := s.validate(ctx, span, opCreate, c); err != nil {
		return nil, err
	}

	created, err := s.gateway.Create(ctx, c)
	if err != nil {
		s.fail(ctx, span, opCreate, c.ID(), err, "failed to create category")
		return nil, fmt.Errorf("creating category: %w", err)
	}

	s.recordTransition(ctx, opCreate)
	return created, nil
}

// Get returns a single category by ID.
func (s *CategoryService) Get(ctx context.Context, id category.ID) (*category.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CategoryService."+opGet,
		trace.WithAttributes(telemetry.AttrCategoryID.String(id.String())))
	defer span.End()

	s.log(ctx).InfoContext(ctx, "fetching category", slog.String("id", id.String()))

	c, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, opGet, id, err, "failed to fetch category")
		return nil, err
	}
	return c, nil
}

// Update replaces the category's attributes, validates and stores it.
func (s *CategoryService) Update(
	ctx context.Context,
	id category.ID,
	cmd ports.UpdateCategoryCommand,
) (*category.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CategoryService."+opUpdate,
		trace.WithAttributes(telemetry.AttrCategoryID.String(id.String())))
	defer span.End()

	s.log(ctx).InfoContext(ctx, "updating category", slog.String("id", id.String()))

	c, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, opUpdate, id, err, "failed to fetch category")
		return nil, fmt.Errorf("fetching category: %w", err)
	}

	// Work on a copy so a rejected update leaves the gateway's entity intact.
	next := c.Clone().Update(cmd.Name, cmd.Description, cmd.IsActive)

	if err := s.validate(ctx, span, opUpdate, next); err != nil {
		return nil, err
	}

	return s.store(ctx, span, opUpdate, next)
}

// Activate reactivates a soft-deleted category.
func (s *CategoryService) Activate(ctx context.Context, id category.ID) (*category.Category, error) {
	return s.transition(ctx, opActivate, id, (*category.Category).Activate)
}

// Deactivate soft-deletes a category.
func (s *CategoryService) Deactivate(ctx context.Context, id category.ID) (*category.Category, error) {
	return s.transition(ctx, opDeactivate, id, (*category.Category).Deactivate)
}

// transition loads a category, applies step and stores the result. Lifecycle
// transitions are not validated; callers validate explicitly when needed.
func (s *CategoryService) transition(
	ctx context.Context,
	op string,
	id category.ID,
	step func(*category.Category) *category.Category,
) (*category.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CategoryService."+op,
		trace.WithAttributes(telemetry.AttrCategoryID.String(id.String())))
	defer span.End()

	s.log(ctx).InfoContext(ctx, "transitioning category",
		slog.String("operation", op),
		slog.String("id", id.String()),
	)

	c, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		s.fail(ctx, span, op, id, err, "failed to fetch category")
		return nil, fmt.Errorf("fetching category: %w", err)
	}

	return s.store(ctx, span, op, step(c.Clone()))
}

// log returns the request-scoped logger when the context carries one.
func (s *CategoryService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *CategoryService) store(
	ctx context.Context,
	span trace.Span,
	op string,
	c *category.Category,
) (*category.Category, error) {
	updated, err := s.gateway.Update(ctx, c)
	if err != nil {
		s.fail(ctx, span, op, c.ID(), err, "failed to store category")
		return nil, fmt.Errorf("storing category: %w", err)
	}

	s.recordTransition(ctx, op)
	return updated, nil
}

// validate runs the category's rules with a fresh handler for the configured
// mode and records the outcome.
func (s *CategoryService) validate(ctx context.Context, span trace.Span, op string, c *category.Category) error {
	err := validation.Validate(c, validation.NewHandler(s.mode))
	if err == nil {
		return nil
	}

	s.metrics.CategoryValidationFailures.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrOperation.String(op)))
	span.RecordError(err)
	span.SetStatus(codes.Error, "validation failed")

	s.log(ctx).WarnContext(ctx, "category failed validation",
		slog.String("operation", op),
		slog.Any("category", c),
		slog.Any("error", err),
	)
	return err
}

func (s *CategoryService) fail(
	ctx context.Context,
	span trace.Span,
	op string,
	id category.ID,
	err error,
	msg string,
) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	s.log(ctx).ErrorContext(ctx, msg,
		slog.String("operation", op),
		slog.String("id", id.String()),
		slog.Any("error", err),
	)
}

func (s *CategoryService) recordTransition(ctx context.Context, op string) {
	s.metrics.CategoryTransitions.Add(ctx, 1,
		metric.WithAttributes(
			telemetry.AttrOperation.String(op),
			telemetry.AttrResult.String("ok"),
		))
}
