package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/middleware"
)

const (
	assetsPath = "/assets/"

	// DefaultAssetsDir is where static assets live relative to the working directory.
	DefaultAssetsDir = "client/public/"

	// DefaultClientDistDir is where the built client lives relative to the working directory.
	DefaultClientDistDir = "client/dist/"
	clientDistPath       = "/client/dist/"
)

// Router routes requests for the pages and static files of the job tracker client.
type Router struct {
	Env           jobtracker.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Requests under /client/dist/ are served from clientDistDir
// and those under /assets/ from assetsDir.
// An empty directory uses DefaultClientDistDir or DefaultAssetsDir.
// A nil logReq logs nothing.
func New(env jobtracker.Environment, logReq middleware.Adapter, clientDistDir, assetsDir string) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	if clientDistDir == "" {
		clientDistDir = DefaultClientDistDir
	}

	if assetsDir == "" {
		assetsDir = DefaultAssetsDir
	}

	r := mux.NewRouter()
	cacheControl := cacheControlMiddleware()

	// NOTE: direct reqs for the client to its distribution
	r.PathPrefix(clientDistPath).Handler(middleware.Chain(
		http.StripPrefix(clientDistPath, http.FileServer(http.Dir(clientDistDir))),
		cacheControl,
		logReq,
	))

	// NOTE: direct reqs for assets to public path
	r.PathPrefix(assetsPath).Handler(middleware.Chain(
		http.StripPrefix(assetsPath, http.FileServer(http.Dir(assetsDir))),
		cacheControl,
		logReq,
	))

	return &Router{logReq: logReq, Env: env, r: r}
}

// Mount registers every [Route] in the [Table] on the [*Router].
//
// A redirect Route answers GET and HEAD requests with 302 Found to its target.
// A view Route calls shell with the Route's [View] in the request context,
// retrievable with [ViewFromContext].
// Any middlewares are applied after those set with OnEveryRequest.
//
// Mount returns jobtracker.ErrNotValid when the Table is malformed or shell is nil.
func (r *Router) Mount(table Table, shell http.Handler, middlewares ...middleware.Adapter) error {
	if err := table.Validate(); err != nil {
		return err
	}

	if shell == nil {
		return fmt.Errorf("%w: no shell handler", jobtracker.ErrNotValid)
	}

	mws := append(append([]middleware.Adapter{}, r.everyReqStack...), middlewares...)
	for _, route := range table {
		var h http.Handler
		if route.IsRedirect() {
			h = http.RedirectHandler(route.Redirect, http.StatusFound)
		} else {
			h = withView(route.View, shell)
		}

		path := route.Path
		r.r.
			MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool { return req.URL.Path == path }).
			Methods(http.MethodGet, http.MethodHead).
			Handler(middleware.Chain(middleware.ReportPanic(r.Env)(h.ServeHTTP), mws...))
	}

	return nil
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(
		middleware.Chain(
			middleware.ReportPanic(r.Env)(handler),
			r.everyReqStack...,
		),
	)
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.logReq,
	)
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// ViewFromContext retrieves the [View] a [Router] placed in ctx.
func ViewFromContext(ctx context.Context) (View, bool) {
	v, ok := ctx.Value(jobtracker.ViewKey).(View)
	return v, ok
}

// withView adds v to the request context under jobtracker.ViewKey.
func withView(v View, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.Clone(context.WithValue(r.Context(), jobtracker.ViewKey, v)))
	})
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
