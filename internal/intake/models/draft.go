package models

import "strings"

// Draft is the record under construction: raw, untyped values keyed by field
// name exactly as the form submitted them. An absent key means the field was
// never filled in. Keys outside the six form fields are tolerated and ignored.
type Draft map[string]any

// Value returns the raw value for a field and whether the key is present.
func (d Draft) Value(field FieldName) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d[string(field)]
	return v, ok
}

// Has reports whether the field key is present, even if its value is empty.
func (d Draft) Has(field FieldName) bool {
	_, ok := d.Value(field)
	return ok
}

// String returns the field as a string when it holds one, verbatim.
func (d Draft) String(field FieldName) string {
	v, _ := d.Value(field)
	s, _ := v.(string)
	return s
}

// IsBlank reports whether a raw value counts as missing: nil, or a string of
// only whitespace.
func IsBlank(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

// Clone copies the draft so callers cannot mutate what a component retained.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
