package jobtracker

import "context"

// A Key stashes a value in a context.Context.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ViewKey stashes the view a route resolved to.
	ViewKey Key = "ViewKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "jobtracker context key: " + string(k)
}

// RequestIDFromContext retrieves the request ID stashed under RequestIDKey.
// If none is set, the empty string returns.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
