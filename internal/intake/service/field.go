package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"amply/internal/intake/models"
)

// FieldChanged is the immediate trigger. Only fields marked immediate are
// validated; for any other field nothing is emitted and ok is false.
func (s *Service) FieldChanged(ctx context.Context, field string, value any, fb Feedback) (result models.ValidationResult, ok bool) {
	ctx, span := s.tracer.Start(ctx, "intake.field_changed")
	defer span.End()
	span.SetAttributes(attribute.String("intake.field", field))

	if !s.engine.IsImmediate(field) {
		return models.ValidationResult{}, false
	}
	if fb == nil {
		fb = discard{}
	}

	result = s.engine.EvaluateField(ctx, field, value)
	fb.ShowFieldFeedback(ctx, models.FeedbackFor(result))
	s.metrics.ObserveImmediate(result)
	span.SetAttributes(attribute.Bool("intake.valid", result.Valid))
	return result, true
}

// discard is used when a caller has no form to update, such as the CLI.
type discard struct{}

func (discard) ShowValues(context.Context, models.Draft)                {}
func (discard) ShowFieldFeedback(context.Context, models.FieldFeedback) {}
func (discard) ShowErrors(context.Context, []models.ValidationResult)   {}
func (discard) ShowConfirmation(context.Context, string)                {}
func (discard) HideConfirmation(context.Context)                        {}
