package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one sees the request first.
// Nil entries are skipped, which lets optional middleware such as the write
// limiter be passed through unconditionally.
func Chain(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			next = mws[i](next)
		}
		return next
	}
}
