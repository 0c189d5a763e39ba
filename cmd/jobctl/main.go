/*
jobctl calls the job tracker API from the command line.

Usage:

	jobctl [global flags] <command> [flags]

Commands:

	register -name NAME       create an account
	me                        show the signed in user
	list                      list applications
	get ID                    show an application
	create [-file FILE | -company C -title T ...]
	update ID [-company C -title T -status S -date D -notes N]
	delete ID                 delete an application
	statuses                  list application statuses

Every command but register and statuses signs in first with -email and -password,
which default to JOBTRACKER_EMAIL and JOBTRACKER_PASSWORD.
The API is found at API_URL; cf. package ranger.
*/
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/api"
	"github.com/xy-planning-network/jobtracker/http/fetch"
	"github.com/xy-planning-network/jobtracker/http/nav"
	"github.com/xy-planning-network/jobtracker/http/req"
	"github.com/xy-planning-network/jobtracker/logger"
	"github.com/xy-planning-network/jobtracker/ranger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, ranger.LoadConfig(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "jobctl:", err)
		os.Exit(1)
	}
}

// cli holds what every command needs.
type cli struct {
	client *api.Client
	nav    *nav.Static
	stdin  io.Reader
	stdout io.Writer
}

func run(ctx context.Context, cfg ranger.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jobctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	email := fs.String("email", os.Getenv("JOBTRACKER_EMAIL"), "account email")
	password := fs.String("password", os.Getenv("JOBTRACKER_PASSWORD"), "account password")
	verbose := fs.Bool("v", false, "log requests")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: no command", jobtracker.ErrNotValid)
	}

	lvl := logger.LogLevelError
	if *verbose {
		lvl = logger.LogLevelDebug
	}
	l := logger.NewAppLogger(
		logger.WithLevel(lvl),
		logger.WithEnv(cfg.Env.String()),
		logger.WithLogger(log.New(stderr, "", log.LstdFlags)),
	)

	// NOTE: staying on the login page reports a rejected session as an error instead of navigating
	c := &cli{nav: nav.NewStatic(cfg.LoginPath), stdin: stdin, stdout: stdout}
	client, err := cfg.APIClient(c.nav, l)
	if err != nil {
		return err
	}
	c.client = client

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "register":
		return c.register(ctx, *email, *password, cmdArgs)
	case "statuses":
		for _, s := range api.ApplicationStatuses() {
			fmt.Fprintf(stdout, "%s\t%s\n", s, s.Label())
		}
		return nil
	}

	if err := c.login(ctx, *email, *password); err != nil {
		return err
	}
	defer func() {
		if err := c.client.Logout(ctx); err != nil {
			l.Debug("cannot log out", &logger.LogContext{Error: err})
		}
	}()

	switch cmd {
	case "me":
		u, err := c.client.Me(ctx)
		return c.print(u, err)
	case "list":
		apps, err := c.client.ListApplications(ctx)
		return c.print(apps, err)
	case "get":
		id, err := parseID(cmdArgs)
		if err != nil {
			return err
		}
		app, err := c.client.GetApplication(ctx, id)
		return c.print(app, err)
	case "create":
		return c.create(ctx, cmdArgs)
	case "update":
		return c.update(ctx, cmdArgs)
	case "delete":
		id, err := parseID(cmdArgs)
		if err != nil {
			return err
		}
		if err := c.client.DeleteApplication(ctx, id); err != nil {
			return c.explain(err)
		}
		fmt.Fprintf(stdout, "deleted application %d\n", id)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", jobtracker.ErrNotValid, cmd)
	}
}

func (c *cli) login(ctx context.Context, email, password string) error {
	_, err := c.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	return c.explain(err)
}

func (c *cli) register(ctx context.Context, email, password string, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "user name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	u, err := c.client.Register(ctx, api.RegisterRequest{Email: email, Password: password, UserName: *name})
	return c.print(u, err)
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	file := fs.String("file", "", "JSON file holding the application; - reads stdin")
	company := fs.String("company", "", "company name")
	title := fs.String("title", "", "job title")
	status := fs.String("status", api.StatusApplied.String(), "application status")
	date := fs.String("date", "", "date applied as YYYY-MM-DD; default: today")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var app api.Application
	if *file != "" {
		r := c.stdin
		if *file != "-" {
			f, err := os.Open(*file)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		if err := req.NewParser().ParseBody(r, &app); err != nil {
			return c.explain(err)
		}
	} else {
		s, err := api.ParseApplicationStatus(*status)
		if err != nil {
			return err
		}

		app = api.Application{CompanyName: *company, JobTitle: *title, Status: s, DateApplied: *date, Notes: *notes}
	}

	created, err := c.client.CreateApplication(ctx, app)
	return c.print(created, err)
}

func (c *cli) update(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	var patch api.ApplicationPatch
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.Func("company", "company name", func(s string) error { patch.CompanyName = &s; return nil })
	fs.Func("title", "job title", func(s string) error { patch.JobTitle = &s; return nil })
	fs.Func("date", "date applied as YYYY-MM-DD", func(s string) error { patch.DateApplied = &s; return nil })
	fs.Func("notes", "notes", func(s string) error { patch.Notes = &s; return nil })
	fs.Func("status", "application status", func(s string) error {
		as, err := api.ParseApplicationStatus(s)
		if err != nil {
			return err
		}
		patch.Status = &as
		return nil
	})
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	app, err := c.client.UpdateApplication(ctx, id, patch)
	return c.print(app, err)
}

// print writes v as indented JSON unless err is set.
func (c *cli) print(v any, err error) error {
	if err != nil {
		return c.explain(err)
	}

	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// explain adds what a person can do about err.
func (c *cli) explain(err error) error {
	var verrs req.ValidationErrors
	var reqErr *fetch.RequestError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, api.ErrRedirected):
		return fmt.Errorf("session rejected, sign in again: %w", err)
	case errors.As(err, &verrs):
		return fmt.Errorf("invalid input:\n%w", verrs)
	case errors.As(err, &reqErr):
		if fields := reqErr.FieldErrors(); len(fields) > 0 {
			return fmt.Errorf("%w: %v", reqErr, fields)
		}
		return fmt.Errorf("%d: %w", reqErr.StatusCode, reqErr)
	default:
		return err
	}
}

func parseID(args []string) (uint, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: missing application ID", jobtracker.ErrMissingData)
	}

	id, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: application ID %q", jobtracker.ErrNotValid, args[0])
	}

	return uint(id), nil
}
