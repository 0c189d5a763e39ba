package ranger

import (
	"bytes"
	"net/http"

	"github.com/xy-planning-network/jobtracker/http/shell"
	"github.com/xy-planning-network/jobtracker/logger"
)

const (
	maintenanceTmpl = "tmpl/maintenance.tmpl"
	retryAfter      = "600"
)

// MaintModeHandler responds to every request with 503 Service Unavailable,
// rendering tmpl/maintenance.tmpl for requests other than HEAD.
func MaintModeHandler(p shell.Parser, l logger.Logger) http.Handler {
	tmpl, err := p.Parse(maintenanceTmpl)
	if err != nil {
		l.Error("cannot parse maintenance template", &logger.LogContext{Error: err})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", retryAfter)

		if tmpl == nil || r.Method == http.MethodHead {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		b := new(bytes.Buffer)
		if err := tmpl.Execute(b, nil); err != nil {
			l.Error("cannot render maintenance template", &logger.LogContext{Error: err, Request: r})
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		b.WriteTo(w)
	})
}
