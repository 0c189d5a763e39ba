package router

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/jobtracker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A View identifies a page of the client application.
type View string

const (
	ViewApplications View = "applications"
	ViewLogin        View = "login"
	ViewRegister     View = "register"
)

func (v View) String() string { return string(v) }

// Title is the human readable name of the View.
func (v View) Title() string {
	return cases.Title(language.English).String(string(v))
}

// A Route binds a literal path to either a View or a Redirect target.
// Exactly one of View or Redirect is set.
type Route struct {
	Path     string
	View     View
	Redirect string
}

// IsRedirect asserts whether the Route redirects rather than renders a View.
func (r Route) IsRedirect() bool { return r.Redirect != "" }

// A Table is an ordered list of Routes.
// Paths are unique and matched literally; the first match wins.
type Table []Route

// DefaultRoutes is the job tracker's route table.
func DefaultRoutes() Table {
	return Table{
		{Path: "/", Redirect: "/login"},
		{Path: "/login", View: ViewLogin},
		{Path: "/register", View: ViewRegister},
		{Path: "/applications", View: ViewApplications},
	}
}

// Validate asserts the Table is well formed.
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t))
	for i, r := range t {
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("%w: route %d: path %q must begin with /", jobtracker.ErrNotValid, i, r.Path)
		}

		if seen[r.Path] {
			return fmt.Errorf("%w: route %d: duplicate path %q", jobtracker.ErrNotValid, i, r.Path)
		}
		seen[r.Path] = true

		if (r.View == "") == (r.Redirect == "") {
			return fmt.Errorf("%w: route %d: %q must set exactly one of View or Redirect", jobtracker.ErrNotValid, i, r.Path)
		}
	}

	return nil
}

// Match returns the first Route whose path equals path.
func (t Table) Match(path string) (Route, bool) {
	for _, r := range t {
		if r.Path == path {
			return r, true
		}
	}

	return Route{}, false
}

// A Resolution is the View a requested path ends up rendering.
type Resolution struct {
	// Path is the path of the Route rendering View,
	// which differs from the requested path when Redirected.
	Path       string
	View       View
	Redirected bool
}

// Resolve follows redirect rules from path until a View is reached.
//
// Resolve returns jobtracker.ErrNotExist when a path matches no Route;
// handling that is up to the host.
// A redirect chain visiting more paths than the Table holds returns jobtracker.ErrNotValid.
func (t Table) Resolve(path string) (Resolution, error) {
	res := Resolution{Path: path}
	for hops := 0; hops <= len(t); hops++ {
		r, ok := t.Match(res.Path)
		if !ok {
			return res, fmt.Errorf("%w: no route for %q", jobtracker.ErrNotExist, res.Path)
		}

		if !r.IsRedirect() {
			res.View = r.View
			return res, nil
		}

		res.Path = r.Redirect
		res.Redirected = true
	}

	return res, fmt.Errorf("%w: redirect loop resolving %q", jobtracker.ErrNotValid, path)
}
