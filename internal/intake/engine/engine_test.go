package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amply/internal/intake/models"
	"amply/internal/intake/validation"
	"amply/pkg/requestcontext"
	"amply/pkg/testutil"
)

func newTestEngine() *Engine {
	return New(validation.New(validation.NewRules(
		[]string{"GB", "FR"},
		[]string{"LOW", "HUGE"},
		[]string{"cia.gov"},
		1900,
	)))
}

func validDraft() models.Draft {
	return models.Draft{
		"fullName": "Joe Bloggs",
		"country":  "GB",
		"yob":      "1970-01-01",
		"position": "Yes Minister",
		"url":      "https://cia.gov/bluebook/narnia",
		"risk":     "HUGE",
	}
}

func fixedContext() context.Context {
	return requestcontext.WithTime(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestEvaluate(t *testing.T) {
	eng := newTestEngine()
	ctx := fixedContext()

	testutil.Given(t, "a fully valid draft", func(t *testing.T) {
		testutil.When(t, "it is evaluated", func(t *testing.T) {
			ev := eng.Evaluate(ctx, validDraft())

			testutil.Then(t, "every field is valid and the record is valid", func(t *testing.T) {
				assert.True(t, ev.AllValid)
				assert.Len(t, ev.Results, 6)
				assert.Empty(t, ev.Invalid())
			})
			testutil.And(t, "the url carries the canonical success message", func(t *testing.T) {
				assert.Equal(t, models.MessageValidURL, ev.Results[models.FieldURL].Message)
			})
		})
	})

	testutil.Given(t, "an empty draft", func(t *testing.T) {
		ev := eng.Evaluate(ctx, models.Draft{})

		testutil.Then(t, "every field is reported missing", func(t *testing.T) {
			assert.False(t, ev.AllValid)
			require.Len(t, ev.Results, 6)
			for _, f := range models.RequiredFields() {
				assert.Equal(t, models.KindMissingField, ev.Results[f].Kind, f)
			}
		})
	})

	testutil.Given(t, "a nil draft", func(t *testing.T) {
		testutil.Then(t, "it evaluates without panicking", func(t *testing.T) {
			ev := eng.Evaluate(ctx, nil)
			assert.False(t, ev.AllValid)
		})
	})
}

func TestEvaluateSingleFieldFailures(t *testing.T) {
	eng := newTestEngine()
	ctx := fixedContext()

	bad := map[models.FieldName][]any{
		models.FieldFullName: {"'"},
		models.FieldCountry:  {"'", "Narnia"},
		models.FieldYOB:      {"2070-01-01", "1070-01-01", "1970-33-44"},
		models.FieldPosition: {"'", "99"},
		models.FieldURL:      {"fttps://cia.gov/bluebook/narnia", "http:/invalidslash.com", "https://invaliddomain/nowhere", "javascript:(alert('PWNED!'))"},
		models.FieldRisk:     {"NOT HUGE", float64(3)},
	}

	for field, values := range bad {
		for _, v := range values {
			d := validDraft()
			d[string(field)] = v
			ev := eng.Evaluate(ctx, d)

			assert.False(t, ev.AllValid, "%s=%v", field, v)
			assert.Equal(t, []models.FieldName{field}, ev.Invalid(), "only %s should fail", field)
		}
	}
}

func TestEvaluateMissingField(t *testing.T) {
	eng := newTestEngine()
	ctx := fixedContext()

	for _, field := range models.RequiredFields() {
		d := validDraft()
		delete(d, string(field))
		ev := eng.Evaluate(ctx, d)

		assert.False(t, ev.AllValid, field)
		assert.Equal(t, []models.FieldName{field}, ev.Invalid())
		assert.Equal(t, models.KindMissingField, ev.Results[field].Kind)
	}
}

func TestEvaluateIgnoresUnknownKeys(t *testing.T) {
	eng := newTestEngine()
	d := validDraft()
	d["nickname"] = "JB"
	d[""] = nil

	ev := eng.Evaluate(fixedContext(), d)

	assert.True(t, ev.AllValid)
	assert.NotContains(t, ev.Results, models.FieldName("nickname"))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	eng := newTestEngine()
	ctx := fixedContext()
	d := validDraft()
	d["yob"] = "1970-33-44"

	first := eng.Evaluate(ctx, d)
	second := eng.Evaluate(ctx, d)

	assert.Equal(t, first, second)
}

func TestEvaluateField(t *testing.T) {
	eng := newTestEngine()
	ctx := fixedContext()

	assert.True(t, eng.IsImmediate("url"))
	assert.False(t, eng.IsImmediate("fullName"))

	r := eng.EvaluateField(ctx, "url", "https://invaliddomain/nowhere")
	assert.False(t, r.Valid)
	assert.Equal(t, models.MessageInvalidURL, r.Message)

	r = eng.EvaluateField(ctx, "yob", "2024-01-01")
	assert.True(t, r.Valid)
}
