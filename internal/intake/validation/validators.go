// Package validation holds the per-field rules of the intake form.
//
// Every validator is pure and total: it never panics and never returns a Go
// error. A rejection is a models.ValidationResult with Valid=false, a Kind from
// the error taxonomy and a user-facing message. Accepted values are never
// rewritten; sanitization is rejection.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"amply/internal/intake/models"
)

// FieldRule binds a field to its check. Immediate rules also run when the
// value changes, not only on submit.
type FieldRule struct {
	Field     models.FieldName
	Immediate bool
	Check     func(raw any, rules Rules, now time.Time) models.ValidationResult
}

// Validators dispatches a raw value to the rule for its field.
type Validators struct {
	rules   Rules
	byField map[models.FieldName]FieldRule
}

// New builds the validator set for the six form fields.
func New(rules Rules) *Validators {
	v := &Validators{rules: rules, byField: make(map[models.FieldName]FieldRule)}
	for _, r := range []FieldRule{
		{Field: models.FieldFullName, Check: checkFullName},
		{Field: models.FieldCountry, Check: checkCountry},
		{Field: models.FieldYOB, Check: checkYOB},
		{Field: models.FieldPosition, Check: checkPosition},
		{Field: models.FieldURL, Immediate: true, Check: checkURL},
		{Field: models.FieldRisk, Check: checkRisk},
	} {
		v.byField[r.Field] = r
	}
	return v
}

// Validate runs the rule for field against raw. now supplies the current
// year for the year-of-birth bound.
func (v *Validators) Validate(field string, raw any, now time.Time) models.ValidationResult {
	rule, ok := v.byField[models.FieldName(field)]
	if !ok {
		return models.ValidationResult{
			Field:   models.FieldName(field),
			Message: "Unknown field.",
			Kind:    models.KindUnknownField,
		}
	}
	return rule.Check(raw, v.rules, now)
}

// Immediate reports whether field is validated on every value change.
func (v *Validators) Immediate(field string) bool {
	rule, ok := v.byField[models.FieldName(field)]
	return ok && rule.Immediate
}

func valid(field models.FieldName) models.ValidationResult {
	return models.ValidationResult{Field: field, Valid: true}
}

func invalid(field models.FieldName, kind models.ErrorKind, message string) models.ValidationResult {
	return models.ValidationResult{Field: field, Kind: kind, Message: message}
}

// -----------------------------------------------------------------------------
// fullName
// -----------------------------------------------------------------------------

func checkFullName(raw any, _ Rules, _ time.Time) models.ValidationResult {
	const f = models.FieldFullName
	if models.IsBlank(raw) {
		return invalid(f, models.KindMissingField, "Full name is required.")
	}
	s, ok := raw.(string)
	if !ok {
		return invalid(f, models.KindFormatInvalid, "Full name must be text.")
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return invalid(f, models.KindFormatInvalid, fmt.Sprintf("Full name must be at most %d characters.", MaxNameLength))
	}
	if ContainsUnsafe(s) {
		return invalid(f, models.KindUnsafeContent, "Full name contains characters that are not allowed.")
	}
	return valid(f)
}

// -----------------------------------------------------------------------------
// country
// -----------------------------------------------------------------------------

func checkCountry(raw any, rules Rules, _ time.Time) models.ValidationResult {
	const f = models.FieldCountry
	if models.IsBlank(raw) {
		return invalid(f, models.KindMissingField, "Country is required.")
	}
	s, ok := raw.(string)
	if !ok {
		return invalid(f, models.KindFormatInvalid, "Country must be a country code.")
	}
	if !rules.hasCountry(s) {
		return invalid(f, models.KindEnumInvalid, "Country must be a recognised country code.")
	}
	return valid(f)
}

// -----------------------------------------------------------------------------
// yob
// -----------------------------------------------------------------------------

// DateLayout is the wire format of the year-of-birth field.
const DateLayout = "2006-01-02"

func checkYOB(raw any, rules Rules, now time.Time) models.ValidationResult {
	const f = models.FieldYOB
	if models.IsBlank(raw) {
		return invalid(f, models.KindMissingField, "Year of birth is required.")
	}
	s, ok := raw.(string)
	if !ok {
		return invalid(f, models.KindFormatInvalid, "Year of birth must be a date (YYYY-MM-DD).")
	}
	// time.Parse rejects month 33, day 44 and 30 February alike.
	date, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return invalid(f, models.KindFormatInvalid, "Year of birth must be a real date (YYYY-MM-DD).")
	}
	if y := date.Year(); y < rules.MinYear() || y > now.Year() {
		return invalid(f, models.KindRangeInvalid,
			fmt.Sprintf("Year of birth must be between %d and %d.", rules.MinYear(), now.Year()))
	}
	return valid(f)
}

// -----------------------------------------------------------------------------
// position
// -----------------------------------------------------------------------------

func checkPosition(raw any, _ Rules, _ time.Time) models.ValidationResult {
	const f = models.FieldPosition
	if models.IsBlank(raw) {
		return invalid(f, models.KindMissingField, "Position is required.")
	}
	s, ok := raw.(string)
	if !ok {
		return invalid(f, models.KindFormatInvalid, "Position must be text.")
	}
	if utf8.RuneCountInString(s) > MaxPositionLength {
		return invalid(f, models.KindFormatInvalid, fmt.Sprintf("Position must be at most %d characters.", MaxPositionLength))
	}
	if ContainsUnsafe(s) {
		return invalid(f, models.KindUnsafeContent, "Position contains characters that are not allowed.")
	}
	if !strings.ContainsFunc(s, unicode.IsLetter) {
		return invalid(f, models.KindFormatInvalid, "Position must describe a role, not a number.")
	}
	return valid(f)
}

// -----------------------------------------------------------------------------
// risk
// -----------------------------------------------------------------------------

func checkRisk(raw any, rules Rules, _ time.Time) models.ValidationResult {
	const f = models.FieldRisk
	if models.IsBlank(raw) {
		return invalid(f, models.KindMissingField, "Risk level is required.")
	}
	// A JSON number that happens to equal a level's ordinal is still wrong.
	s, ok := raw.(string)
	if !ok {
		return invalid(f, models.KindFormatInvalid, "Risk level must be one of the listed levels.")
	}
	if !rules.hasRisk(s) {
		return invalid(f, models.KindEnumInvalid,
			"Risk level must be one of: "+strings.Join(rules.RiskLevels(), ", ")+".")
	}
	return valid(f)
}

// -----------------------------------------------------------------------------
// unsafe content
// -----------------------------------------------------------------------------

const unsafeChars = "'\";`\\<>"

var unsafeSequences = []string{"--", "/*", "*/"}

// ContainsUnsafe reports whether s carries characters that would change
// meaning if reflected into a query or script: quotes, statement terminators,
// markup brackets, comment openers and control characters.
func ContainsUnsafe(s string) bool {
	if strings.ContainsAny(s, unsafeChars) {
		return true
	}
	for _, seq := range unsafeSequences {
		if strings.Contains(s, seq) {
			return true
		}
	}
	return strings.ContainsFunc(s, unicode.IsControl)
}
