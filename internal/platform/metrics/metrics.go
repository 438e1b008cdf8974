package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"amply/internal/intake/models"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is
// valid and records nothing, so components can run without instrumentation.
type Metrics struct {
	Submissions          *prometheus.CounterVec
	FieldRejections      *prometheus.CounterVec
	ImmediateValidations *prometheus.CounterVec
	Entries              prometheus.Gauge
	RequestDuration      *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "amply_intake_submissions_total",
			Help: "Submission attempts by outcome (accepted, rejected)",
		}, []string{"outcome"}),
		FieldRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "amply_intake_field_rejections_total",
			Help: "Rejected field values on submit by field and error kind",
		}, []string{"field", "kind"}),
		ImmediateValidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "amply_intake_immediate_validations_total",
			Help: "Validations triggered by a field value change",
		}, []string{"field", "valid"}),
		Entries: f.NewGauge(prometheus.GaugeOpts{
			Name: "amply_intake_entries",
			Help: "Number of entries in the accepted list",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "amply_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveSubmission counts one attempt and its rejected fields.
func (m *Metrics) ObserveSubmission(state models.SubmissionState, ev models.Evaluation) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(string(state)).Inc()
	for _, r := range ev.InvalidResults() {
		m.FieldRejections.WithLabelValues(string(r.Field), string(r.Kind)).Inc()
	}
}

func (m *Metrics) ObserveImmediate(r models.ValidationResult) {
	if m == nil {
		return
	}
	valid := "false"
	if r.Valid {
		valid = "true"
	}
	m.ImmediateValidations.WithLabelValues(string(r.Field), valid).Inc()
}

func (m *Metrics) SetEntries(n int) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(n))
}

func (m *Metrics) ObserveRequestDuration(route string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}
