package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/http/fetch"
	"github.com/xy-planning-network/jobtracker/http/req"
)

const (
	authPath         = "/api/auth"
	applicationsPath = "/api/applications"
)

// Client calls the job tracker backend.
type Client struct {
	fetch  *fetch.Client
	parser *req.Parser
}

// NewClient constructs a *Client sending requests with fc.
// Paths are relative, so fc ought to be configured with fetch.WithBaseURL.
func NewClient(fc *fetch.Client) *Client {
	return &Client{fetch: fc, parser: req.NewParser()}
}

// Register creates an account.
// A taken email returns an error wrapping jobtracker.ErrConflict.
func (c *Client) Register(ctx context.Context, r RegisterRequest) (User, error) {
	var u User
	err := c.send(ctx, http.MethodPost, authPath+"/register", &r, &u)
	return u, err
}

// Login starts a session, stored as a cookie by the fetch.Client.
// Wrong credentials return a *fetch.RequestError wrapping jobtracker.ErrUnauthorized
// when the Navigator is already on the login page.
func (c *Client) Login(ctx context.Context, r LoginRequest) (User, error) {
	var u User
	err := c.send(ctx, http.MethodPost, authPath+"/login", &r, &u)
	return u, err
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, authPath+"/logout", nil, nil)
}

// Me retrieves the User owning the session.
func (c *Client) Me(ctx context.Context) (User, error) {
	var u User
	err := c.send(ctx, http.MethodGet, authPath+"/me", nil, &u)
	return u, err
}

// ListApplications retrieves every Application of the current User.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	apps := []Application{}
	if err := c.send(ctx, http.MethodGet, applicationsPath, nil, &apps); err != nil {
		return nil, err
	}

	return apps, nil
}

// GetApplication retrieves the Application with id.
func (c *Client) GetApplication(ctx context.Context, id uint) (Application, error) {
	var app Application
	err := c.send(ctx, http.MethodGet, applicationPath(id), nil, &app)
	return app, err
}

// CreateApplication saves app, returning it as the backend stored it.
func (c *Client) CreateApplication(ctx context.Context, app Application) (Application, error) {
	app.ID = 0

	var created Application
	err := c.send(ctx, http.MethodPost, applicationsPath, &app, &created)
	return created, err
}

// UpdateApplication applies patch to the Application with id, returning the result.
//
// The backend replaces the whole Application on PUT,
// so UpdateApplication retrieves the current one and sends it with patch applied.
// An empty patch returns jobtracker.ErrMissingData without sending anything.
func (c *Client) UpdateApplication(ctx context.Context, id uint, patch ApplicationPatch) (Application, error) {
	if patch.IsZero() {
		return Application{}, fmt.Errorf("%w: nothing to update", jobtracker.ErrMissingData)
	}

	if err := c.parser.Validate(&patch); err != nil {
		return Application{}, err
	}

	current, err := c.GetApplication(ctx, id)
	if err != nil {
		return Application{}, err
	}

	next := patch.Apply(current)
	next.ID = id

	var app Application
	err = c.send(ctx, http.MethodPut, applicationPath(id), &next, &app)
	return app, err
}

// DeleteApplication removes the Application with id.
func (c *Client) DeleteApplication(ctx context.Context, id uint) error {
	return c.send(ctx, http.MethodDelete, applicationPath(id), nil, nil)
}

// send validates and encodes payload, when not nil, as the request body,
// and decodes the response into dst, when not nil.
func (c *Client) send(ctx context.Context, method, path string, payload, dst any) error {
	opts := []fetch.Opt{fetch.Method(method)}
	if payload != nil {
		if err := c.parser.Validate(payload); err != nil {
			return err
		}

		opts = append(opts, fetch.Body(payload))
	}

	o, err := c.fetch.Do(ctx, path, dst, opts...)
	if err != nil {
		return err
	}

	switch {
	case o == fetch.OutcomeRedirected:
		return ErrRedirected
	case dst != nil && o == fetch.OutcomeEmpty:
		return fmt.Errorf("%w: %s %s responded without a body", jobtracker.ErrMissingData, method, path)
	}

	return nil
}

func applicationPath(id uint) string {
	return fmt.Sprintf("%s/%d", applicationsPath, id)
}
