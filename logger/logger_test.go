package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"debug", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestAppLoggerLevels(t *testing.T) {
	for _, tc := range []struct {
		name     string
		level    logger.LogLevel
		log      func(l logger.Logger)
		expected string
	}{
		{"Debug-At-Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("hi", nil) }, "[DEBUG]"},
		{"Debug-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("hi", nil) }, ""},
		{"Info-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("hi", nil) }, "[INFO]"},
		{"Warn-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Warn("hi", nil) }, "[WARN]"},
		{"Warn-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Warn("hi", nil) }, ""},
		{"Error-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Error("hi", nil) }, "[ERROR]"},
		{"Fatal-At-Fatal", logger.LogLevelFatal, func(l logger.Logger) { l.Fatal("hi", nil) }, "[FATAL]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.NewAppLogger(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			tc.log(l)

			// Assert
			require.Equal(t, tc.level, l.LogLevel())
			if tc.expected == "" {
				require.Zero(t, b.Len())
				return
			}

			require.Equal(t, tc.expected, logLevelRegexp.FindString(b.String()))
			require.Equal(t, "'hi'", msgRegexp.FindString(b.String()))
		})
	}
}

func TestAppLoggerCallSite(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewAppLogger(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Info("where am I", nil)

	// Assert
	require.True(t, fpRegexp.MatchString(b.String()), b.String())

	// Arrange
	b.Reset()

	// Act
	l.Info("where am I", &logger.LogContext{Caller: "somewhere/else.go:1"})

	// Assert
	require.Contains(t, b.String(), "somewhere/else.go:1")
	require.Contains(t, b.String(), "log_context: {}")
}

func TestAppLoggerLogContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewAppLogger(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Error("failed", &logger.LogContext{Error: errors.New("boom")})

	// Assert
	require.Contains(t, b.String(), `log_context: {"error":"boom"}`)
}

func TestAppLoggerAddSkip(t *testing.T) {
	// Arrange
	l := logger.NewAppLogger(logger.WithSkip(1))

	// Act
	skipped := l.AddSkip(3)

	// Assert
	require.Equal(t, 1, l.Skip())
	require.Equal(t, 3, skipped.Skip())
}

func TestNew(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	l := logger.New(logger.WithLevel(logger.LogLevelWarn))
	require.IsType(t, &logger.AppLogger{}, l)
	require.Equal(t, logger.LogLevelWarn, l.LogLevel())
}
