// ABOUTME: Composition helper for HandlerFunc middleware
// ABOUTME: Chain(h, a, b) wraps h as a(b(h)), so the first argument runs first

package middleware

import "net/http"

// Middleware wraps a handler with cross-cutting behavior.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain wraps h in the given middleware, outermost first.
func Chain(h http.HandlerFunc, mws ...Middleware) http.HandlerFunc {
	wrapped := h
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}
