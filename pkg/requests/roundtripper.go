package requests

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RoundTripperFunc is an http.RoundTripper implemented by a function.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// LimitRate wraps a round tripper so that requests are sent no faster than
// the limiter allows. Waiting respects the request context.
func LimitRate(rt http.RoundTripper, limiter *rate.Limiter) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if err := limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
		return rt.RoundTrip(req)
	})
}
