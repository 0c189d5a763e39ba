package nav_test

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/fetch"
	"github.com/xy-planning-network/jobtracker/http/nav"
	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/logger"
)

func newLogger(b *bytes.Buffer) logger.Logger {
	return logger.NewAppLogger(logger.WithLogger(log.New(b, "", 0)))
}

func TestNewHistory(t *testing.T) {
	for _, tc := range []struct {
		name  string
		table router.Table
		start string
		err   error
		path  string
		view  router.View
	}{
		{"Root-Redirects", router.DefaultRoutes(), "/", nil, "/login", router.ViewLogin},
		{"Applications", router.DefaultRoutes(), "/applications", nil, "/applications", router.ViewApplications},
		{"Unmatched", router.DefaultRoutes(), "/nope", jobtracker.ErrNotExist, "", ""},
		{"Bad-Table", router.Table{{Path: "/"}}, "/", jobtracker.ErrNotValid, "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			h, err := nav.NewHistory(tc.table, tc.start, newLogger(new(bytes.Buffer)))

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, h)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.path, h.Path())
			require.Equal(t, tc.view, h.View())
			require.Zero(t, h.Reloads())
		})
	}
}

func TestHistoryNavigate(t *testing.T) {
	// Arrange
	h, err := nav.NewHistory(router.DefaultRoutes(), "/register", newLogger(new(bytes.Buffer)))
	require.Nil(t, err)

	// Act
	err = h.Navigate("/")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "/login", h.Path())

	// Act
	err = h.Navigate("/missing")

	// Assert
	require.ErrorIs(t, err, jobtracker.ErrNotExist)
	require.Equal(t, "/login", h.Path())

	// Act + Assert
	require.True(t, h.Back())
	require.Equal(t, "/register", h.Path())
	require.False(t, h.Back())
	require.Equal(t, "/register", h.Path())
}

func TestHistoryAssign(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	h, err := nav.NewHistory(router.DefaultRoutes(), "/applications", newLogger(b))
	require.Nil(t, err)

	// Act
	h.Assign("/login")

	// Assert
	require.Equal(t, "/login", h.Path())
	require.Equal(t, router.ViewLogin, h.View())
	require.Equal(t, 1, h.Reloads())

	// Act
	h.Assign("/nope")

	// Assert
	require.Equal(t, "/login", h.Path())
	require.Equal(t, 2, h.Reloads())
	require.Contains(t, b.String(), "cannot navigate to /nope")
}

func TestHistoryConcurrent(t *testing.T) {
	// Arrange
	h, err := nav.NewHistory(router.DefaultRoutes(), "/login", newLogger(new(bytes.Buffer)))
	require.Nil(t, err)

	// Act
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Assign("/applications")
			_ = h.Path()
		}()
	}
	wg.Wait()

	// Assert
	require.Equal(t, 50, h.Reloads())
	require.Equal(t, "/applications", h.Path())
}

func TestHistoryWithClient(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	b := new(bytes.Buffer)
	l := newLogger(b)
	h, err := nav.NewHistory(router.DefaultRoutes(), "/applications", l)
	require.Nil(t, err)

	c, err := fetch.New(h, fetch.WithLogger(l))
	require.Nil(t, err)

	// Act
	actual, err := c.Request(context.Background(), srv.URL+"/api/applications")

	// Assert
	require.Nil(t, err)
	require.Nil(t, actual)
	require.Equal(t, "/login", h.Path())
	require.Equal(t, 1, h.Reloads())

	// Act
	_, err = c.Request(context.Background(), srv.URL+"/api/applications")

	// Assert
	var reqErr *fetch.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	require.Equal(t, 1, h.Reloads())
}

func TestStatic(t *testing.T) {
	// Arrange
	s := nav.NewStatic("/cli")

	// Act
	s.Assign("/login")
	s.Assign("/login")

	// Assert
	require.Equal(t, "/cli", s.Path())
	require.Equal(t, []string{"/login", "/login"}, s.Assigned())
}
