package jobtracker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/jobtracker"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "jobtracker context key: ViewKey", jobtracker.ViewKey.String())
}

func TestRequestIDFromContext(t *testing.T) {
	require.Zero(t, jobtracker.RequestIDFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), jobtracker.RequestIDKey, "abc")
	require.Equal(t, "abc", jobtracker.RequestIDFromContext(ctx))
}
