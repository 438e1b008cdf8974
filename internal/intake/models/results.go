package models

// ErrorKind classifies why a field was rejected. Rejections are values, never
// Go errors: the engine itself cannot fail.
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindMissingField  ErrorKind = "missing_field"
	KindFormatInvalid ErrorKind = "format_invalid"
	KindRangeInvalid  ErrorKind = "range_invalid"
	KindEnumInvalid   ErrorKind = "enum_invalid"
	KindUnsafeContent ErrorKind = "unsafe_content"
	KindSchemeInvalid ErrorKind = "scheme_invalid"
	KindHostInvalid   ErrorKind = "host_invalid"
	KindUnknownField  ErrorKind = "unknown_field"
)

// Canonical URL messages. The url field always carries one of the two.
const (
	MessageValidURL   = "Valid URL."
	MessageInvalidURL = "Invalid URL format."
)

// Feedback classes the form applies to the url indicator.
const (
	ClassValidFeedback   = "valid-feedback"
	ClassInvalidFeedback = "invalid-feedback"
)

// ValidationResult is one field's verdict.
type ValidationResult struct {
	Field   FieldName `json:"field"`
	Valid   bool      `json:"valid"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind,omitempty"`
}

// Evaluation aggregates every field's result for one draft.
type Evaluation struct {
	Results  map[FieldName]ValidationResult `json:"results"`
	AllValid bool                           `json:"all_valid"`
}

// Invalid lists the rejected fields in canonical order.
func (e Evaluation) Invalid() []FieldName {
	var out []FieldName
	for _, f := range requiredFields {
		if r, ok := e.Results[f]; ok && !r.Valid {
			out = append(out, f)
		}
	}
	return out
}

// InvalidResults returns the rejected results in canonical order.
func (e Evaluation) InvalidResults() []ValidationResult {
	var out []ValidationResult
	for _, f := range e.Invalid() {
		out = append(out, e.Results[f])
	}
	return out
}

// FieldFeedback is what the immediate indicator beside a field displays.
type FieldFeedback struct {
	Field   FieldName `json:"field"`
	Valid   bool      `json:"valid"`
	Message string    `json:"message"`
	Class   string    `json:"class"`
}

// FeedbackFor converts a result into the indicator contract.
func FeedbackFor(r ValidationResult) FieldFeedback {
	class := ClassInvalidFeedback
	if r.Valid {
		class = ClassValidFeedback
	}
	return FieldFeedback{Field: r.Field, Valid: r.Valid, Message: r.Message, Class: class}
}
