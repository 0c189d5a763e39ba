package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/logger"
)

// A statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// LogRequest logs the request's method, requested URL, originating IP address,
// response status, and duration using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(sr, r)

			uri := r.URL.Path
			q := r.URL.Query()
			if val := q.Get("password"); val != "" {
				q.Set("password", "xxxxxxx")
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri, fmt.Sprint(sr.status)}
			if ip, ok := IPAddressFromContext(r.Context()); ok {
				strs = append([]string{ip}, strs...)
			}

			data := map[string]any{"duration": time.Since(start).String()}
			if id := jobtracker.RequestIDFromContext(r.Context()); id != "" {
				data["requestID"] = id
			}

			ls.Info(strings.Join(strs, " "), &logger.LogContext{Data: data})
		})
	}
}
