package shell

import (
	"bytes"
	"fmt"
	html "html/template"
	"net/http"

	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/logger"
)

// DefaultTemplate is the entry document every View renders.
const DefaultTemplate = "tmpl/index.tmpl"

// A Page is the data an entry document executes with.
type Page struct {
	APIURL    string
	RequestID string
	Title     string
	View      router.View
}

// A Shell serves the single page application's entry document
// for the View a [router.Router] placed in the request context.
type Shell struct {
	apiURL string
	logger logger.Logger
	tmpl   *html.Template
}

// New parses the template at fp, or DefaultTemplate if fp is empty,
// and constructs a *Shell rendering it.
//
// apiURL is handed to the client so it knows where to send requests.
func New(p Parser, log logger.Logger, apiURL, fp string) (*Shell, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no Parser", jobtracker.ErrBadConfig)
	}

	if log == nil {
		log = logger.New()
	}

	if fp == "" {
		fp = DefaultTemplate
	}

	tmpl, err := p.Parse(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %s: %s", jobtracker.ErrBadConfig, fp, err)
	}

	return &Shell{apiURL: apiURL, logger: log, tmpl: tmpl}, nil
}

// ServeHTTP renders the entry document.
// A request without a View responds with 404 Not Found.
func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, ok := router.ViewFromContext(r.Context())
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := Page{
		APIURL:    s.apiURL,
		RequestID: jobtracker.RequestIDFromContext(r.Context()),
		Title:     v.Title(),
		View:      v,
	}

	b := new(bytes.Buffer)
	if err := s.tmpl.Execute(b, page); err != nil {
		s.logger.Error("cannot render shell", &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		b.WriteTo(w)
	}
}
