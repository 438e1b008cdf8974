package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"amply/pkg/platform/httputil"
)

// Registrar is implemented by feature handlers that own a set of routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the operational endpoints and mounts the feature handlers.
// Handlers own their middleware chains; /health and /metrics stay bare so
// probes and scrapers are not logged or measured.
func NewRouter(gatherer prometheus.Gatherer, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
