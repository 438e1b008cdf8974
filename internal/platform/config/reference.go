package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"amply/internal/intake/validation"
)

// Reference is the externally supplied data the validators check against.
type Reference struct {
	Countries      []string `yaml:"countries" json:"countries"`
	RiskLevels     []string `yaml:"risk_levels" json:"risk_levels"`
	AllowedDomains []string `yaml:"allowed_domains" json:"allowed_domains"`
	MinYear        int      `yaml:"min_year" json:"min_year"`
}

// DefaultRiskLevels are the levels offered by the form, lowest first.
var DefaultRiskLevels = []string{"LOW", "MEDIUM", "HIGH", "HUGE"}

// DefaultReference returns the built-in reference data: ISO 3166-1 alpha-2
// country codes, the default risk levels and no domain allow list.
func DefaultReference() Reference {
	return Reference{
		Countries:  strings.Fields(isoCountryCodes),
		RiskLevels: append([]string(nil), DefaultRiskLevels...),
		MinYear:    validation.DefaultMinYear,
	}
}

// LoadReference reads a YAML reference file. Lists the file leaves out keep
// their built-in defaults; allowed_domains has no default.
func LoadReference(path string) (Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Reference{}, fmt.Errorf("read reference file: %w", err)
	}
	ref, err := ParseReference(data)
	if err != nil {
		return Reference{}, fmt.Errorf("parse reference file %s: %w", path, err)
	}
	return ref, nil
}

// ParseReference decodes YAML reference data over the defaults. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func ParseReference(data []byte) (Reference, error) {
	var raw Reference
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Reference{}, err
	}

	ref := DefaultReference()
	if raw.Countries != nil {
		ref.Countries = raw.Countries
	}
	if raw.RiskLevels != nil {
		ref.RiskLevels = raw.RiskLevels
	}
	ref.AllowedDomains = raw.AllowedDomains
	if raw.MinYear != 0 {
		ref.MinYear = raw.MinYear
	}
	return ref, nil
}

const isoCountryCodes = `
AD AE AF AG AI AL AM AO AQ AR AS AT AU AW AX AZ
BA BB BD BE BF BG BH BI BJ BL BM BN BO BQ BR BS BT BV BW BY BZ
CA CC CD CF CG CH CI CK CL CM CN CO CR CU CV CW CX CY CZ
DE DJ DK DM DO DZ
EC EE EG EH ER ES ET
FI FJ FK FM FO FR
GA GB GD GE GF GG GH GI GL GM GN GP GQ GR GS GT GU GW GY
HK HM HN HR HT HU
ID IE IL IM IN IO IQ IR IS IT
JE JM JO JP
KE KG KH KI KM KN KP KR KW KY KZ
LA LB LC LI LK LR LS LT LU LV LY
MA MC MD ME MF MG MH MK ML MM MN MO MP MQ MR MS MT MU MV MW MX MY MZ
NA NC NE NF NG NI NL NO NP NR NU NZ
OM
PA PE PF PG PH PK PL PM PN PR PS PT PW PY
QA
RE RO RS RU RW
SA SB SC SD SE SG SH SI SJ SK SL SM SN SO SR SS ST SV SX SY SZ
TC TD TF TG TH TJ TK TL TM TN TO TR TT TV TW TZ
UA UG UM US UY UZ
VA VC VE VG VI VN VU
WF WS
YE YT
ZA ZM ZW
`
