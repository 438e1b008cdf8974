package models

// FieldName names one input of the intake form. The string values match the
// form's input names so drafts decode straight from the browser payload.
type FieldName string

const (
	FieldFullName FieldName = "fullName"
	FieldCountry  FieldName = "country"
	FieldYOB      FieldName = "yob"
	FieldPosition FieldName = "position"
	FieldURL      FieldName = "url"
	FieldRisk     FieldName = "risk"
)

var requiredFields = []FieldName{
	FieldFullName,
	FieldCountry,
	FieldYOB,
	FieldPosition,
	FieldURL,
	FieldRisk,
}

// RequiredFields returns every form field in canonical display order.
// All of them are required.
func RequiredFields() []FieldName {
	return append([]FieldName(nil), requiredFields...)
}

// ParseFieldName resolves a raw key to a known field.
func ParseFieldName(raw string) (FieldName, bool) {
	for _, f := range requiredFields {
		if string(f) == raw {
			return f, true
		}
	}
	return "", false
}

func (f FieldName) String() string {
	return string(f)
}
