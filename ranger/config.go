package ranger

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	// TODO: configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/api"
	"github.com/xy-planning-network/jobtracker/http/fetch"
	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/logger"
)

const (
	apiURLEnvVar          = "API_URL"
	assetsPathEnvVar      = "ASSETS_PATH"
	baseURLEnvVar         = "BASE_URL"
	clientDistPathEnvVar  = "CLIENT_DIST_PATH"
	environmentEnvVar     = "ENVIRONMENT"
	hostEnvVar            = "HOST"
	logLevelEnvVar        = "LOG_LEVEL"
	loginPathEnvVar       = "LOGIN_PATH"
	maintenanceEnvVar     = "MAINTENANCE_MODE"
	portEnvVar            = "PORT"
	serverIdleTimeoutEnv  = "SERVER_IDLE_TIMEOUT"
	serverReadTimeoutEnv  = "SERVER_READ_TIMEOUT"
	serverWriteTimeoutEnv = "SERVER_WRITE_TIMEOUT"
	shutdownTimeoutEnvVar = "SHUTDOWN_TIMEOUT"

	DefaultHost               = "localhost"
	DefaultPort               = "3000"
	DefaultServerIdleTimeout  = 120 * time.Second
	DefaultServerReadTimeout  = 5 * time.Second
	DefaultServerWriteTimeout = 5 * time.Second
	DefaultShutdownTimeout    = 5 * time.Second
)

// Config is how a job tracker app is set up.
// Every field has an environment variable; cf. [LoadConfig].
type Config struct {
	// APIURL is where the backend API is served.
	APIURL *url.URL

	// AssetsDir holds static assets served under /assets/.
	AssetsDir string

	// BaseURL is where the app is served.
	BaseURL *url.URL

	// ClientDistDir holds the built client served under /client/dist/.
	ClientDistDir string

	Env         jobtracker.Environment
	LogLevel    logger.LogLevel
	LoginPath   string
	Maintenance bool

	Host string
	Port string

	IdleTimeout     time.Duration
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	WriteTimeout    time.Duration
}

// LoadConfig reads a Config from environment variables,
// including those set in a .env file in the working directory.
func LoadConfig() Config {
	host := jobtracker.EnvVarOrString(hostEnvVar, DefaultHost)
	port := strings.TrimPrefix(jobtracker.EnvVarOrString(portEnvVar, DefaultPort), ":")

	base := jobtracker.EnvVarOrURL(baseURLEnvVar, fmt.Sprintf("http://%s", net.JoinHostPort(host, port)))

	apiDef := ""
	if base != nil {
		apiDef = base.String()
	}

	return Config{
		APIURL:          jobtracker.EnvVarOrURL(apiURLEnvVar, apiDef),
		AssetsDir:       jobtracker.EnvVarOrString(assetsPathEnvVar, router.DefaultAssetsDir),
		BaseURL:         base,
		ClientDistDir:   jobtracker.EnvVarOrString(clientDistPathEnvVar, router.DefaultClientDistDir),
		Env:             jobtracker.EnvVarOrEnv(environmentEnvVar, jobtracker.Development),
		LogLevel:        jobtracker.EnvVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo),
		LoginPath:       jobtracker.EnvVarOrString(loginPathEnvVar, fetch.DefaultLoginPath),
		Maintenance:     jobtracker.EnvVarOrBool(maintenanceEnvVar, false),
		Host:            host,
		Port:            port,
		IdleTimeout:     jobtracker.EnvVarOrDuration(serverIdleTimeoutEnv, DefaultServerIdleTimeout),
		ReadTimeout:     jobtracker.EnvVarOrDuration(serverReadTimeoutEnv, DefaultServerReadTimeout),
		ShutdownTimeout: jobtracker.EnvVarOrDuration(shutdownTimeoutEnvVar, DefaultShutdownTimeout),
		WriteTimeout:    jobtracker.EnvVarOrDuration(serverWriteTimeoutEnv, DefaultServerWriteTimeout),
	}
}

// Validate asserts the Config can set up an app.
func (c Config) Validate() error {
	if c.BaseURL == nil {
		return fmt.Errorf("%w: %s is not a valid URL", jobtracker.ErrBadConfig, baseURLEnvVar)
	}

	if c.APIURL == nil {
		return fmt.Errorf("%w: %s is not a valid URL", jobtracker.ErrBadConfig, apiURLEnvVar)
	}

	if !strings.HasPrefix(c.LoginPath, "/") {
		return fmt.Errorf("%w: %s must begin with /", jobtracker.ErrBadConfig, loginPathEnvVar)
	}

	if err := c.Env.Valid(); err != nil {
		return fmt.Errorf("%w: %s: %s", jobtracker.ErrBadConfig, environmentEnvVar, err)
	}

	return nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, c.Port) }

// Logger constructs the logger.Logger the Config describes.
func (c Config) Logger() logger.Logger {
	return logger.New(logger.WithEnv(c.Env.String()), logger.WithLevel(c.LogLevel))
}

// APIClient constructs an *api.Client calling APIURL on behalf of nav.
func (c Config) APIClient(nav fetch.Navigator, l logger.Logger, opts ...fetch.ClientOptFn) (*api.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if l == nil {
		l = c.Logger()
	}

	args := []fetch.ClientOptFn{
		fetch.WithBaseURL(c.APIURL),
		fetch.WithLoginPath(c.LoginPath),
		fetch.WithLogger(l),
	}

	fc, err := fetch.New(nav, append(args, opts...)...)
	if err != nil {
		return nil, err
	}

	return api.NewClient(fc), nil
}
