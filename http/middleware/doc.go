/*
The middleware package defines what a middleware is for the jobtracker host and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- RateLimit
- RequestID

ReportPanic wraps a single http.HandlerFunc rather than acting as an Adapter.

ranger assembles the default chain; a host built by hand can copy-paste the following:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(apiURL),
	}
*/
package middleware
