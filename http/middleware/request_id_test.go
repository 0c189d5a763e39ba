package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/middleware"
)

func TestRequestID(t *testing.T) {
	// Arrange
	var actual string
	handler := middleware.RequestID()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		actual = jobtracker.RequestIDFromContext(rx.Context())
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	handler.ServeHTTP(w, r)

	// Assert
	_, err := uuid.Parse(actual)
	require.Nil(t, err)
	require.Equal(t, actual, w.Header().Get("X-Request-ID"))

	// Arrange
	id := uuid.NewString()
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("X-Request-ID", id)

	// Act
	handler.ServeHTTP(w, r)

	// Assert
	require.Equal(t, id, actual)

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("X-Request-ID", "<script>")

	// Act
	handler.ServeHTTP(w, r)

	// Assert
	require.NotEqual(t, "<script>", actual)
}
