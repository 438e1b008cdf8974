package validation

import (
	"net/url"
	"strings"
	"time"

	"amply/internal/intake/models"
)

// Pseudo-schemes that execute or embed content. Rejected before anything else.
var scriptSchemes = []string{"javascript:", "vbscript:", "data:"}

func checkURL(raw any, rules Rules, _ time.Time) models.ValidationResult {
	const f = models.FieldURL
	bad := func(kind models.ErrorKind) models.ValidationResult {
		return invalid(f, kind, models.MessageInvalidURL)
	}

	if models.IsBlank(raw) {
		return bad(models.KindMissingField)
	}
	s, ok := raw.(string)
	if !ok {
		return bad(models.KindFormatInvalid)
	}
	if len(s) > MaxURLLength {
		return bad(models.KindFormatInvalid)
	}
	s = strings.TrimSpace(s)

	if isScriptScheme(s) {
		return bad(models.KindSchemeInvalid)
	}

	scheme, rest, found := strings.Cut(s, ":")
	if !found || !strings.EqualFold(scheme, "https") {
		return bad(models.KindSchemeInvalid)
	}
	// The authority must be introduced by exactly two slashes.
	if !strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "///") {
		return bad(models.KindFormatInvalid)
	}

	u, err := url.Parse(s)
	if err != nil || u.Opaque != "" {
		return bad(models.KindFormatInvalid)
	}
	if u.User != nil {
		return bad(models.KindHostInvalid)
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if !IsHostname(host) || !rules.domainAllowed(host) {
		return bad(models.KindHostInvalid)
	}

	return models.ValidationResult{Field: f, Valid: true, Message: models.MessageValidURL}
}

// isScriptScheme mirrors how browsers read a scheme: ASCII whitespace and
// control characters anywhere in it are ignored, case does not matter.
func isScriptScheme(s string) bool {
	var b strings.Builder
	for i := 0; i < len(s) && b.Len() < 16; i++ {
		c := s[i]
		if c <= ' ' || c == 0x7f {
			continue
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	folded := b.String()
	for _, p := range scriptSchemes {
		if strings.HasPrefix(folded, p) {
			return true
		}
	}
	return false
}

// IsHostname reports whether host is a DNS name with at least two labels,
// letters-digits-hyphens only, and a top-level label that is not numeric. IP literals
// and single-label names such as "invaliddomain" fail.
func IsHostname(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isLabel(label) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for i := 0; i < len(tld); i++ {
		if tld[i] < '0' || tld[i] > '9' {
			return true
		}
	}
	return false
}

func isLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}
