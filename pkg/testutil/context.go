package testutil

import (
	"net/http"
	"time"

	"amply/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, which is what the
// year-of-birth upper bound is evaluated against.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
