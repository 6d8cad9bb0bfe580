package testutil

import (
	"net/http"
	"time"

	"worktime/pkg/requestcontext"
)

// WithCaller marks the request as coming from an authenticated service
// caller, as the service-token middleware would.
func WithCaller(req *http.Request, caller string) *http.Request {
	return req.WithContext(requestcontext.WithCaller(req.Context(), caller))
}

// WithRequestTime pins the request time read by services through
// requestcontext.Now.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
