// Package strings provides string manipulation utilities for configuration lists.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  GB ", "FR", "GB", "", "  "})
//	// Returns: []string{"GB", "FR"}
func DedupeAndTrim(values []string) []string {
	return dedupe(values, false)
}

// DedupeAndTrimLower is like DedupeAndTrim but also lowercases each element.
// Domain names are compared this way.
func DedupeAndTrimLower(values []string) []string {
	return dedupe(values, true)
}

// SplitList splits a comma-separated list as found in environment variables.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return DedupeAndTrim(strings.Split(raw, ","))
}

// ToSet builds a membership set from already normalized values.
func ToSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func dedupe(values []string, lower bool) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if lower {
			trimmed = strings.ToLower(trimmed)
		}
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
