package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"amply/internal/intake/models"
	dErrors "amply/pkg/domain-errors"
	audit "amply/pkg/platform/audit"
	"amply/pkg/requestcontext"
)

// Submit runs one submission attempt from idle to accepted or rejected.
//
// Values are shown back before anything else. URL feedback is emitted only
// when the draft carries a url key. An accepted draft becomes an Entry and a
// confirmation; a rejected one leaves the list untouched and shows an error
// per invalid field. Rejection is an outcome, not an error: the only error
// returned is a failure to store the entry.
func (s *Service) Submit(ctx context.Context, draft models.Draft, fb Feedback) (models.SubmissionOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "intake.submit")
	defer span.End()
	if fb == nil {
		fb = discard{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	attempt := models.NewAttempt()
	fb.ShowValues(ctx, draft.Clone())

	ev := s.engine.Evaluate(ctx, draft)
	if err := attempt.Evaluated(ev); err != nil {
		return models.SubmissionOutcome{}, dErrors.Wrap(err, dErrors.CodeInternal, "submission state error")
	}
	if draft.Has(models.FieldURL) {
		fb.ShowFieldFeedback(ctx, models.FeedbackFor(ev.Results[models.FieldURL]))
	}

	state, err := attempt.Resolve()
	if err != nil {
		return models.SubmissionOutcome{}, dErrors.Wrap(err, dErrors.CodeInternal, "submission state error")
	}
	span.SetAttributes(
		attribute.String("intake.state", string(state)),
		attribute.StringSlice("intake.invalid_fields", fieldNames(ev.Invalid())),
	)

	if state == models.StateAccepted {
		outcome, err := s.accept(ctx, draft, ev, fb)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "store entry")
		}
		return outcome, err
	}
	return s.reject(ctx, ev, fb), nil
}

func (s *Service) accept(ctx context.Context, draft models.Draft, ev models.Evaluation, fb Feedback) (models.SubmissionOutcome, error) {
	entry := models.NewEntry(uuid.New(), draft, requestcontext.Now(ctx))
	if err := s.entries.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to store entry",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		fb.HideConfirmation(ctx)
		return models.SubmissionOutcome{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store entry")
	}

	confirmation := models.ConfirmationMessage(entry.FullName)
	fb.ShowConfirmation(ctx, confirmation)

	s.metrics.ObserveSubmission(models.StateAccepted, ev)
	if n, err := s.entries.Count(ctx); err == nil {
		s.metrics.SetEntries(n)
	}
	s.logger.InfoContext(ctx, "entity added",
		"request_id", requestcontext.RequestID(ctx),
		"entry_id", entry.ID.String(),
	)
	s.emit(ctx, audit.EventEntityAdded, entry.ID.String(), "accepted", "")

	return models.SubmissionOutcome{
		Accepted:     true,
		State:        models.StateAccepted,
		Entry:        entry,
		Evaluation:   ev,
		Confirmation: confirmation,
	}, nil
}

func (s *Service) reject(ctx context.Context, ev models.Evaluation, fb Feedback) models.SubmissionOutcome {
	fb.HideConfirmation(ctx)
	fb.ShowErrors(ctx, ev.InvalidResults())

	invalid := strings.Join(fieldNames(ev.Invalid()), ",")
	s.metrics.ObserveSubmission(models.StateRejected, ev)
	s.logger.InfoContext(ctx, "entity rejected",
		"request_id", requestcontext.RequestID(ctx),
		"invalid_fields", invalid,
	)
	s.emit(ctx, audit.EventEntityRejected, invalid, "rejected", reasons(ev))
	if unsafe := unsafeFields(ev); unsafe != "" {
		s.emit(ctx, audit.EventUnsafeInput, unsafe, "rejected", string(models.KindUnsafeContent))
	}

	return models.SubmissionOutcome{
		State:      models.StateRejected,
		Evaluation: ev,
	}
}

// emit records an audit event. Audit failures are logged and never change
// the outcome the user sees.
func (s *Service) emit(ctx context.Context, action audit.AuditEvent, subject, decision, reason string) {
	if s.auditor == nil {
		return
	}
	event := audit.Event{
		Category:  action.Category(),
		Timestamp: requestcontext.Now(ctx),
		Action:    string(action),
		Subject:   subject,
		Decision:  decision,
		Reason:    reason,
		RequestID: requestcontext.RequestID(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		Client:    clientName(requestcontext.UserAgent(ctx)),
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", event.RequestID,
			"action", event.Action,
			"error", err,
		)
	}
}

func clientName(ua string) string {
	if ua == "" {
		return ""
	}
	name, _ := useragent.New(ua).Browser()
	return name
}

func fieldNames(fields []models.FieldName) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, string(f))
	}
	return out
}

// reasons lists field:kind pairs for the rejected fields.
func reasons(ev models.Evaluation) string {
	parts := make([]string, 0, len(ev.Results))
	for _, r := range ev.InvalidResults() {
		parts = append(parts, string(r.Field)+":"+string(r.Kind))
	}
	return strings.Join(parts, ",")
}

func unsafeFields(ev models.Evaluation) string {
	var out []string
	for _, r := range ev.InvalidResults() {
		if r.Kind == models.KindUnsafeContent {
			out = append(out, string(r.Field))
		}
	}
	return strings.Join(out, ",")
}
