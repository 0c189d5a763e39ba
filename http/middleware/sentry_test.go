package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/middleware"
)

func TestReportPanic(t *testing.T) {
	// Arrange
	panicky := func(w http.ResponseWriter, r *http.Request) { panic("boom") }
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act + Assert
	require.Panics(t, func() {
		middleware.ReportPanic(jobtracker.Development)(panicky)(w, r)
	})

	// Act + Assert
	require.NotPanics(t, func() {
		middleware.ReportPanic(jobtracker.Production)(panicky)(w, r)
	})
}
