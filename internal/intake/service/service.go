// Package service is the submission controller of the intake form. It runs
// the two triggers (a field value changed, the form was submitted), drives the
// submission state machine and tells the feedback channel what to display.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EntryStore,Feedback,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"amply/internal/intake/models"
	"amply/internal/platform/metrics"
	dErrors "amply/pkg/domain-errors"
	audit "amply/pkg/platform/audit"
	"amply/pkg/platform/sentinel"
)

// EntryStore is the accepted-entries list.
type EntryStore interface {
	Append(ctx context.Context, entry *models.Entry) error
	List(ctx context.Context) ([]models.Entry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Entry, error)
	Count(ctx context.Context) (int, error)
}

// Evaluator is the validation engine.
type Evaluator interface {
	Evaluate(ctx context.Context, draft models.Draft) models.Evaluation
	EvaluateField(ctx context.Context, field string, raw any) models.ValidationResult
	IsImmediate(field string) bool
}

// Feedback is what the form displays. Implementations render; they never
// decide validity.
type Feedback interface {
	// ShowValues keeps the values the user typed, verbatim.
	ShowValues(ctx context.Context, draft models.Draft)
	ShowFieldFeedback(ctx context.Context, fb models.FieldFeedback)
	ShowErrors(ctx context.Context, results []models.ValidationResult)
	ShowConfirmation(ctx context.Context, message string)
	HideConfirmation(ctx context.Context)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service is the submission controller.
type Service struct {
	entries EntryStore
	engine  Evaluator
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor AuditPublisher
	tracer  trace.Tracer

	// mu makes evaluate-then-append atomic across concurrent submissions.
	mu sync.Mutex
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(entries EntryStore, eng Evaluator, opts ...Option) *Service {
	s := &Service{
		entries: entries,
		engine:  eng,
		logger:  slog.Default(),
		tracer:  noop.NewTracerProvider().Tracer("amply/intake"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns accepted entries in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list entries")
	}
	return entries, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Entry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "entry not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load entry")
	}
	return entry, nil
}
