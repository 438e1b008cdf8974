package engine

import (
	"context"
	"time"

	"amply/internal/intake/models"
	"amply/pkg/requestcontext"
)

// FieldValidator is the per-field rule set the engine aggregates.
type FieldValidator interface {
	Validate(field string, raw any, now time.Time) models.ValidationResult
	Immediate(field string) bool
}

// Engine evaluates whole drafts. It holds no state between calls, so the same
// draft evaluated at the same request time always yields the same results.
type Engine struct {
	validators FieldValidator
}

func New(v FieldValidator) *Engine {
	return &Engine{validators: v}
}

// Evaluate runs every required field's validator, without short-circuiting,
// so feedback is complete even when the record will be rejected. Keys that
// are not form fields are ignored. The year-of-birth bound uses the
// request-scoped clock.
func (e *Engine) Evaluate(ctx context.Context, draft models.Draft) models.Evaluation {
	now := requestcontext.Now(ctx)
	fields := models.RequiredFields()
	ev := models.Evaluation{
		Results:  make(map[models.FieldName]models.ValidationResult, len(fields)),
		AllValid: true,
	}
	for _, f := range fields {
		raw, _ := draft.Value(f)
		r := e.validators.Validate(string(f), raw, now)
		ev.Results[f] = r
		if !r.Valid {
			ev.AllValid = false
		}
	}
	return ev
}

// EvaluateField validates a single value, as the immediate trigger does.
func (e *Engine) EvaluateField(ctx context.Context, field string, raw any) models.ValidationResult {
	return e.validators.Validate(field, raw, requestcontext.Now(ctx))
}

// IsImmediate reports whether field is validated on value change.
func (e *Engine) IsImmediate(field string) bool {
	return e.validators.Immediate(field)
}
