/*
Package ranger initializes and manages a job tracker app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New] using a [Config] from [LoadConfig].

[*Ranger.Guide] begins the web server, serving the route table's views,
the built client under /client/dist/ and static assets under /assets/.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000).

Stop that web server with [*Ranger.Shutdown],
end the context passed in with [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a job tracker app through environment variables.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - API_URL: the base URL of the backend API; default: BASE_URL
  - ASSETS_PATH: the directory static assets are served from; default: client/public/
  - BASE_URL: the base URL the application runs on; default: http://HOST:PORT
  - CLIENT_DIST_PATH: the directory the built client is served from; default: client/dist/
  - ENVIRONMENT: the environment the application is running in; cf. [jobtracker.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - LOGIN_PATH: the page API clients are sent to when their session is rejected; default: /login
  - MAINTENANCE_MODE: respond to every request with 503 Service Unavailable; default: false
  - PORT: the port the application should listen on; default: 3000
  - SENTRY_DSN: report errors to Sentry; cf. [logger.SentryLogger]
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 5s
  - SHUTDOWN_TIMEOUT: how long open connections have to finish when shutting down; default: 5s
*/
package ranger
