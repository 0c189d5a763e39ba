package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/xy-planning-network/jobtracker/http/middleware"
	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/http/shell"
	"github.com/xy-planning-network/jobtracker/logger"
)

// setDefaults fills whatever RangerOptions left unset.
func (r *Ranger) setDefaults() error {
	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = r.cfg.Logger()
		r.l.Debug("setting up app logger", nil)
	}

	if r.table == nil {
		r.table = router.DefaultRoutes()
	}

	if r.shell == nil {
		s, err := shell.New(defaultParser(r.cfg), r.l, r.cfg.APIURL.String(), "")
		if err != nil {
			return err
		}
		r.shell = s
	}

	r.Router = defaultRouter(r.cfg, r.l)

	if r.srv == nil {
		r.srv = defaultServer(r.cfg)
	}
	r.srv.Handler = r.Router
	r.srv.BaseContext = func(_ net.Listener) context.Context { return r.ctx }

	return nil
}

// defaultParser constructs a shell.Parser for rendering the entry document.
//
// defaultParser makes available these functions in an HTML template:
//
//   - "assetURI"
//   - "env"
//   - "isDevelopment"
//   - "isProduction"
//   - "loginPath"
//   - "nonce"
func defaultParser(cfg Config) shell.Parser {
	return shell.NewParser(
		shell.WithFn(shell.AssetURI(cfg.Env, os.DirFS(cfg.ClientDistDir))),
		shell.WithFn(shell.Env(cfg.Env)),
		shell.WithFn("isDevelopment", cfg.Env.IsDevelopment),
		shell.WithFn("isProduction", cfg.Env.IsProduction),
		shell.WithFn("loginPath", func() string { return cfg.LoginPath }),
		shell.WithFn(shell.Nonce()),
	)
}

// defaultMiddlewares is the stack applied to every request.
func defaultMiddlewares(cfg Config, l logger.Logger) []middleware.Adapter {
	return []middleware.Adapter{
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.ForceHTTPS(cfg.Env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.CORS(corsOrigin(cfg)),
	}
}

// corsOrigin is the API origin when it differs from the app's, or empty.
func corsOrigin(cfg Config) string {
	api := origin(cfg.APIURL)
	if api == origin(cfg.BaseURL) {
		return ""
	}

	return api
}

func origin(u *url.URL) string {
	if u == nil {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
//
// Requests for HTML matching no route are redirected to the root,
// which the route table resolves; all others respond 404 Not Found.
func defaultRouter(cfg Config, l logger.Logger) *router.Router {
	r := router.New(cfg.Env, middleware.LogRequest(l), cfg.ClientDistDir, cfg.AssetsDir)
	r.OnEveryRequest(defaultMiddlewares(cfg, l)...)
	r.HandleNotFound(func(wx http.ResponseWriter, rx *http.Request) {
		if strings.Contains(rx.Header.Get("Accept"), "text/html") && rx.URL.Path != "/" {
			http.Redirect(wx, rx, "/", http.StatusFound)
			return
		}

		wx.WriteHeader(http.StatusNotFound)
	})

	return r
}

// defaultServer constructs a default [*http.Server].
func defaultServer(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// String describes where the app is served.
func (r *Ranger) String() string {
	return fmt.Sprintf("%s app at %s (api: %s)", r.cfg.Env, r.cfg.BaseURL, r.cfg.APIURL)
}
