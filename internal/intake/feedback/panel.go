// Package feedback keeps the visible state of one intake form: the values
// shown back to the user, the URL indicator, per-field error indicators and
// the confirmation banner.
package feedback

import (
	"context"
	"sync"

	"amply/internal/intake/models"
)

type Confirmation struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
}

// View is a point-in-time copy of what the form displays.
type View struct {
	Values      models.Draft                `json:"values"`
	URLFeedback *models.FieldFeedback       `json:"url_feedback,omitempty"`
	Errors      map[models.FieldName]string `json:"errors"`
	// Confirmation is hidden unless the last submission was accepted.
	Confirmation Confirmation `json:"confirmation"`
}

// Panel implements the service's Feedback interface. It never decides
// validity; it only records what it was told to show.
type Panel struct {
	mu   sync.Mutex
	view View
}

func NewPanel() *Panel {
	return &Panel{view: View{
		Values: models.Draft{},
		Errors: map[models.FieldName]string{},
	}}
}

// ShowValues starts a new submission: the typed values are shown back and
// indicators from the previous attempt are cleared.
func (p *Panel) ShowValues(_ context.Context, draft models.Draft) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Values = draft.Clone()
	p.view.URLFeedback = nil
	p.view.Errors = map[models.FieldName]string{}
}

func (p *Panel) ShowFieldFeedback(_ context.Context, fb models.FieldFeedback) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if fb.Field == models.FieldURL {
		p.view.URLFeedback = &fb
		return
	}
	if fb.Valid {
		delete(p.view.Errors, fb.Field)
		return
	}
	p.view.Errors[fb.Field] = fb.Message
}

func (p *Panel) ShowErrors(_ context.Context, results []models.ValidationResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range results {
		if !r.Valid {
			p.view.Errors[r.Field] = r.Message
		}
	}
}

func (p *Panel) ShowConfirmation(_ context.Context, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Confirmation = Confirmation{Visible: true, Text: message}
}

func (p *Panel) HideConfirmation(_ context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Confirmation = Confirmation{}
}

// Snapshot returns a copy the caller may keep or serialize.
func (p *Panel) Snapshot() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := View{
		Values:       p.view.Values.Clone(),
		Errors:       make(map[models.FieldName]string, len(p.view.Errors)),
		Confirmation: p.view.Confirmation,
	}
	for k, v := range p.view.Errors {
		out.Errors[k] = v
	}
	if p.view.URLFeedback != nil {
		fb := *p.view.URLFeedback
		out.URLFeedback = &fb
	}
	return out
}
