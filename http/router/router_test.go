package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/middleware"
	"github.com/xy-planning-network/jobtracker/http/router"
)

// viewEcho writes the View it finds in the request context.
func viewEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := router.ViewFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(v))
	})
}

func TestRouterMount(t *testing.T) {
	// Arrange
	r := router.New(jobtracker.Testing, nil, "", "")
	r.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	// Act
	err := r.Mount(router.DefaultRoutes(), viewEcho())

	// Assert
	require.Nil(t, err)

	for _, tc := range []struct {
		name     string
		method   string
		path     string
		code     int
		body     string
		location string
	}{
		{"Root-Redirects", http.MethodGet, "/", http.StatusFound, "", "/login"},
		{"Root-Head-Redirects", http.MethodHead, "/", http.StatusFound, "", "/login"},
		{"Login", http.MethodGet, "/login", http.StatusOK, "login", ""},
		{"Register", http.MethodGet, "/register", http.StatusOK, "register", ""},
		{"Applications", http.MethodGet, "/applications", http.StatusOK, "applications", ""},
		{"Unmatched", http.MethodGet, "/nope", http.StatusTeapot, "", ""},
		{"No-Params", http.MethodGet, "/applications/1", http.StatusTeapot, "", ""},
		{"Post", http.MethodPost, "/login", http.StatusMethodNotAllowed, "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)

			// Act
			r.ServeHTTP(w, req)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				require.Equal(t, tc.body, w.Body.String())
			}
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

func TestRouterMountErrors(t *testing.T) {
	// Arrange
	r := router.New(jobtracker.Testing, nil, "", "")

	// Act + Assert
	require.ErrorIs(t, r.Mount(router.Table{{Path: "/"}}, viewEcho()), jobtracker.ErrNotValid)
	require.ErrorIs(t, r.Mount(router.DefaultRoutes(), nil), jobtracker.ErrNotValid)
}

func TestRouterMiddlewares(t *testing.T) {
	// Arrange
	var calls []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	r := router.New(jobtracker.Testing, nil, "", "")
	r.OnEveryRequest(mark("every"))
	require.Nil(t, r.Mount(router.DefaultRoutes(), viewEcho(), mark("mount")))

	// Act
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/login", nil))

	// Assert
	require.Equal(t, []string{"every", "mount"}, calls)
}

func TestRouterStatic(t *testing.T) {
	// Arrange
	dist := t.TempDir()
	assets := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dist, "app.js"), []byte("app"), 0o644))
	require.Nil(t, os.WriteFile(filepath.Join(assets, "logo.svg"), []byte("<svg/>"), 0o644))

	r := router.New(jobtracker.Testing, nil, dist, assets)

	for _, tc := range []struct {
		path string
		body string
	}{
		{"/client/dist/app.js", "app"},
		{"/assets/logo.svg", "<svg/>"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()

			// Act
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			// Assert
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, "max-age=2592000", w.Header().Get("Cache-Control"))
		})
	}
}
