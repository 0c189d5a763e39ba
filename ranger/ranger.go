package ranger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/logger"
)

// A Ranger manages and exposes all components of a job tracker app to one another.
type Ranger struct {
	*router.Router

	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc
	l      logger.Logger
	shell  http.Handler
	srv    *http.Server
	table  router.Table
}

// New constructs a Ranger from cfg and the provided options.
// Options are applied first; whatever they leave unset is filled by defaults.
//
// New mounts the route table on the router, ready for [*Ranger.Guide].
func New(cfg Config, opts ...RangerOption) (*Ranger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Ranger{cfg: cfg}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	if err := r.setDefaults(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	if cfg.Maintenance {
		r.l.Warn("maintenance mode enabled", nil)
		r.CatchAll(MaintModeHandler(defaultParser(cfg), r.l).ServeHTTP)
		return r, nil
	}

	if err := r.Mount(r.table, r.shell); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	return r, nil
}

func (r *Ranger) EmitConfig() Config        { return r.cfg }
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ln, err := net.Listen("tcp", r.srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}

	return r.serve(ln)
}

// serve accepts connections on ln until a signal arrives or the Ranger's context ends.
func (r *Ranger) serve(ln net.Listener) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errs := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", ln.Addr()), nil)
		if err := r.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("could not serve: %w", err)
			return
		}
		errs <- nil
	}()

	select {
	case <-r.ctx.Done():
		return r.Shutdown()
	case err := <-errs:
		r.cancel()
		return err
	}
}

// Shutdown shutdowns the web server, waiting up to the configured ShutdownTimeout
// for open connections to finish.
func (r *Ranger) Shutdown() error {
	defer r.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.cfg.ShutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	if err := r.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
