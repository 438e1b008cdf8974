// Package config reads runtime configuration from AMPLY_* environment
// variables and the optional YAML reference data file.
package config

import (
	"os"
	"strconv"
	"time"

	"amply/internal/intake/validation"
	"amply/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	OTLPEndpoint    string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// Config is everything main needs to wire the service.
type Config struct {
	Server    Server
	Reference Reference
}

const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultMaxBodyBytes    = 64 << 10
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Config from environment variables so main stays lean.
// Reference data starts from the built-in defaults, is replaced by
// AMPLY_REFERENCE_FILE when set, and individual lists are then overridden by
// their own variables.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:            readEnv("AMPLY_ADDR", defaultAddr),
			LogLevel:        readEnv("AMPLY_LOG_LEVEL", defaultLogLevel),
			LogFormat:       readEnv("AMPLY_LOG_FORMAT", defaultLogFormat),
			OTLPEndpoint:    readEnv("AMPLY_OTLP_ENDPOINT", ""),
			MaxBodyBytes:    parseInt64("AMPLY_MAX_BODY_BYTES", defaultMaxBodyBytes),
			ShutdownTimeout: parseDuration("AMPLY_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Reference: DefaultReference(),
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if path := readEnv("AMPLY_REFERENCE_FILE", ""); path != "" {
		ref, err := LoadReference(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Reference = ref
	}
	cfg.Reference.applyEnv()
	return cfg, nil
}

func (r *Reference) applyEnv() {
	if v := parseList("AMPLY_COUNTRIES"); v != nil {
		r.Countries = v
	}
	if v := parseList("AMPLY_RISK_LEVELS"); v != nil {
		r.RiskLevels = v
	}
	if v := parseList("AMPLY_ALLOWED_DOMAINS"); v != nil {
		r.AllowedDomains = v
	}
	r.MinYear = parseInt("AMPLY_MIN_YEAR", r.MinYear)
}

// Rules turns the reference data into the validators' rule set.
func (r Reference) Rules() validation.Rules {
	return validation.NewRules(r.Countries, r.RiskLevels, r.AllowedDomains, r.MinYear)
}

func readEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// parseList returns nil when the variable is unset so callers can tell
// "not configured" from "configured".
func parseList(key string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	return strings.SplitList(v)
}

func parseInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func parseInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func parseDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
