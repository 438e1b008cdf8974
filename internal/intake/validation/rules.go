package validation

import (
	"strings"

	platformstrings "amply/pkg/platform/strings"
)

// DefaultMinYear is the earliest year of birth accepted when configuration
// does not say otherwise.
const DefaultMinYear = 1900

// Length limits applied before content checks.
const (
	MaxNameLength     = 256
	MaxPositionLength = 256
	MaxURLLength      = 2048
)

// Rules is the externally supplied reference data the validators check
// membership against. Build it with NewRules; it is read-only afterwards and
// safe to share across goroutines.
type Rules struct {
	countries  map[string]struct{}
	riskLevels map[string]struct{}
	riskOrder  []string
	domains    []string
	minYear    int
}

// NewRules normalizes the reference lists: entries are trimmed and
// deduplicated, domains are lower-cased and stripped of a leading dot.
// A non-positive minYear falls back to DefaultMinYear. An empty domain list
// means "any syntactically valid host".
func NewRules(countries, riskLevels, domains []string, minYear int) Rules {
	if minYear <= 0 {
		minYear = DefaultMinYear
	}
	risks := platformstrings.DedupeAndTrim(riskLevels)
	cleaned := make([]string, 0, len(domains))
	for _, d := range domains {
		cleaned = append(cleaned, trimDots(strings.TrimSpace(d)))
	}
	normalizedDomains := platformstrings.DedupeAndTrimLower(cleaned)
	return Rules{
		countries:  platformstrings.ToSet(platformstrings.DedupeAndTrim(countries)),
		riskLevels: platformstrings.ToSet(risks),
		riskOrder:  risks,
		domains:    normalizedDomains,
		minYear:    minYear,
	}
}

// MinYear is the inclusive lower bound for the year of birth.
func (r Rules) MinYear() int { return r.minYear }

// RiskLevels returns the enumeration in configured order.
func (r Rules) RiskLevels() []string { return append([]string(nil), r.riskOrder...) }

// Domains returns the normalized domain allow list.
func (r Rules) Domains() []string { return append([]string(nil), r.domains...) }

// Countries returns the number of known country codes.
func (r Rules) Countries() int { return len(r.countries) }

func (r Rules) hasCountry(code string) bool {
	_, ok := r.countries[code]
	return ok
}

func (r Rules) hasRisk(level string) bool {
	_, ok := r.riskLevels[level]
	return ok
}

// domainAllowed accepts the host when it equals an allowed domain or is one
// of its subdomains. With no allow list every valid host passes.
func (r Rules) domainAllowed(host string) bool {
	if len(r.domains) == 0 {
		return true
	}
	for _, d := range r.domains {
		if host == d || hasSuffixLabel(host, d) {
			return true
		}
	}
	return false
}

func hasSuffixLabel(host, domain string) bool {
	return len(host) > len(domain)+1 &&
		host[len(host)-len(domain):] == domain &&
		host[len(host)-len(domain)-1] == '.'
}

func trimDots(s string) string {
	for len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
