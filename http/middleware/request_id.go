package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/jobtracker"
)

const requestIDHeader = "X-Request-ID"

// RequestID adds a uuid to the request context under jobtracker.RequestIDKey
// and echoes it in the "X-Request-ID" response header.
//
// A valid uuid already set in the "X-Request-ID" request header is reused.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), jobtracker.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
