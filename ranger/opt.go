package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/logger"
)

// A RangerOption configures a *Ranger under construction.
// Anything a RangerOption leaves unset is filled by a default.
type RangerOption func(rng *Ranger) error

// WithContext exposes the provided context.Context to the app.
// Ending ctx stops the web server.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("nil context")
		}

		rng.ctx = ctx
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("nil logger")
		}

		rng.l = l
		rng.l.Debug(fmt.Sprintf("using logger %T", l), nil)
		return nil
	}
}

// WithRoutes mounts table instead of router.DefaultRoutes.
func WithRoutes(table router.Table) RangerOption {
	return func(rng *Ranger) error {
		if err := table.Validate(); err != nil {
			return err
		}

		rng.table = table
		return nil
	}
}

// WithServer exposes the *http.Server to the app.
// The Ranger sets its Handler.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		rng.srv = s
		return nil
	}
}

// WithShell renders views with h instead of the default shell.Shell.
func WithShell(h http.Handler) RangerOption {
	return func(rng *Ranger) error {
		rng.shell = h
		return nil
	}
}
