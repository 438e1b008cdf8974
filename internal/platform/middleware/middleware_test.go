package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amply/internal/platform/logger"
	"amply/internal/platform/metrics"
	"amply/pkg/requestcontext"
	"amply/pkg/testutil"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	h := Recovery(logger.NewWithWriter(&buf, "info", "json"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
	})

	t.Run("inbound id reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rr := testutil.DoRequest(h, req)
		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rr.Header().Get(RequestIDHeader))
	})
}

func TestRequestTime(t *testing.T) {
	var seen time.Time
	h := RequestTime(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Now(r.Context())
	}))

	t.Run("captured once per request", func(t *testing.T) {
		before := time.Now()
		testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, seen.Before(before))
	})

	t.Run("upstream time kept", func(t *testing.T) {
		fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		req := testutil.WithRequestTime(httptest.NewRequest(http.MethodGet, "/", nil), fixed)
		testutil.DoRequest(h, req)
		assert.Equal(t, fixed, seen)
	})
}

func TestClientMetadata(t *testing.T) {
	var ip, ua string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = requestcontext.ClientIP(r.Context())
		ua = requestcontext.UserAgent(r.Context())
	}))

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for takes the first hop", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": " 203.0.113.8 "}, "10.0.0.1:1234", "203.0.113.8"},
		{"remote addr ipv4", nil, "192.0.2.1:5555", "192.0.2.1"},
		{"remote addr ipv6", nil, "[::1]:5555", "::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			req.Header.Set("User-Agent", "curl/8.0")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			testutil.DoRequest(h, req)
			assert.Equal(t, tt.want, ip)
			assert.Equal(t, "curl/8.0", ua)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := RequestID(Logger(logger.NewWithWriter(&buf, "info", "text"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/entities", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	testutil.DoRequest(h, req)

	out := buf.String()
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "request_id=req-7")
	assert.Contains(t, out, "path=/entities")
}

func TestContentTypeJSON(t *testing.T) {
	h := ContentTypeJSON(http.HandlerFunc(ok))

	t.Run("json accepted with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		assert.Equal(t, http.StatusOK, testutil.DoRequest(h, req).Code)
	})

	t.Run("form encoding rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		testutil.AssertStatusAndError(t, testutil.DoRequest(h, req), http.StatusUnsupportedMediaType, "unsupported")
	})

	t.Run("GET passes without header", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	})
}

func TestLatency(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(Latency(m))
	r.Get("/entities/{id}", ok)

	testutil.DoRequest(r, httptest.NewRequest(http.MethodGet, "/entities/abc", nil))
	testutil.DoRequest(r, httptest.NewRequest(http.MethodGet, "/entities/def", nil))

	count := promtestutil.CollectAndCount(m.RequestDuration)
	require.Equal(t, 1, count, "both requests share the route pattern label")
}
