package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/jobtracker"
	"github.com/xy-planning-network/jobtracker/logger"
	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultLoginPath is where a Client sends the Navigator
	// when the API rejects the current credentials.
	DefaultLoginPath = "/login"

	requestIDHeader = "X-Request-ID"
)

// A Doer executes an HTTP request. *http.Client satisfies Doer.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// A Client issues requests to the API on behalf of the page its Navigator displays.
// A Client is safe for concurrent use.
type Client struct {
	base      *url.URL
	doer      Doer
	jar       http.CookieJar
	loginPath string
	logger    logger.Logger
	nav       Navigator
}

// New constructs a *Client navigating with nav.
//
// By default, a Client uses an *http.Client with no timeout,
// an in-memory cookie jar, and DefaultLoginPath.
// A Doer with its own cookie jar should be paired with WithJar(nil)
// so cookies are not handled twice.
func New(nav Navigator, opts ...ClientOptFn) (*Client, error) {
	if nav == nil {
		return nil, fmt.Errorf("%w: no Navigator", jobtracker.ErrBadConfig)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create cookie jar: %s", jobtracker.ErrBadConfig, err)
	}

	c := &Client{
		doer:      new(http.Client),
		jar:       jar,
		loginPath: DefaultLoginPath,
		nav:       nav,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logger.New()
	}

	return c, nil
}

// Request sends a request to rawURL configured by opts and parses the JSON response body.
//
// Request returns:
//   - nil and no error when the response was a 401 or 403
//     and the Navigator was not already on the login page;
//     the Navigator has been sent to the login page.
//   - a *RequestError for any other status outside 200-299.
//   - nil and no error for a successful, empty response body.
//   - the decoded body otherwise: map[string]any, []any, float64, string, or bool.
//
// A successful response body that is not JSON returns an error wrapping jobtracker.ErrBadFormat.
func (c *Client) Request(ctx context.Context, rawURL string, opts ...Opt) (any, error) {
	var v any
	if _, err := c.RequestInto(ctx, rawURL, &v, opts...); err != nil {
		return nil, err
	}

	return v, nil
}

// RequestInto behaves like Request, decoding the response body into the value pointed to by dst.
//
// RequestInto reports whether dst was populated:
// false with no error means the Navigator was redirected or the body was empty.
func (c *Client) RequestInto(ctx context.Context, rawURL string, dst any, opts ...Opt) (bool, error) {
	o, err := c.Do(ctx, rawURL, dst, opts...)
	return o == OutcomeDecoded, err
}

// An Outcome is how a request without error concluded.
type Outcome int

const (
	// OutcomeEmpty means the response succeeded but nothing was decoded:
	// the body was empty or there was no destination.
	OutcomeEmpty Outcome = iota

	// OutcomeDecoded means the response body was decoded into the destination.
	OutcomeDecoded

	// OutcomeRedirected means the API rejected the credentials
	// and the Navigator was sent to the login page.
	OutcomeRedirected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDecoded:
		return "decoded"
	case OutcomeRedirected:
		return "redirected"
	default:
		return "empty"
	}
}

// Do behaves like RequestInto, reporting how the request concluded.
// A nil dst discards the response body.
func (c *Client) Do(ctx context.Context, rawURL string, dst any, opts ...Opt) (Outcome, error) {
	ex, err := c.exchange(ctx, rawURL, opts...)
	if err != nil {
		c.logger.Error("API fetch error", ex.logContext(err))
		return OutcomeEmpty, err
	}

	if ex.redirected {
		return OutcomeRedirected, nil
	}

	if len(ex.body) == 0 || dst == nil {
		return OutcomeEmpty, nil
	}

	if err := json.Unmarshal(ex.body, dst); err != nil {
		err = fmt.Errorf("%w: cannot parse response body: %s", jobtracker.ErrBadFormat, err)
		c.logger.Error("API fetch error", ex.logContext(err))
		return OutcomeEmpty, err
	}

	return OutcomeDecoded, nil
}

// An exchange is the outcome of a single round trip.
type exchange struct {
	method     string
	url        string
	status     int
	body       []byte
	redirected bool
}

func (ex *exchange) logContext(err error) *logger.LogContext {
	data := map[string]any{"method": ex.method, "url": ex.url}
	if ex.status != 0 {
		data["status"] = ex.status
	}

	return &logger.LogContext{Data: data, Error: err}
}

// exchange sends the request and classifies the response.
// exchange never logs errors; it leaves that to its caller.
func (c *Client) exchange(ctx context.Context, rawURL string, opts ...Opt) (*exchange, error) {
	ex := &exchange{url: rawURL}

	o, err := newOptions(opts...)
	if err != nil {
		return ex, err
	}
	ex.method = o.Method

	u, err := c.resolve(rawURL)
	if err != nil {
		return ex, err
	}
	ex.url = u.String()

	r, err := http.NewRequestWithContext(ctx, o.Method, ex.url, o.Body)
	if err != nil {
		return ex, fmt.Errorf("%w: cannot create request: %s", jobtracker.ErrNotValid, err)
	}

	r.Header = o.headers(c.defaultHeaders(ctx))

	withCookies := c.jar != nil && o.Credentials.applies(c.base, u)
	if withCookies {
		attachCookies(c.jar, r)
	}

	c.logger.Debug(fmt.Sprintf("%s %s", o.Method, ex.url), nil)

	res, err := c.doer.Do(r)
	if err != nil {
		return ex, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	ex.status = res.StatusCode
	if withCookies {
		c.jar.SetCookies(u, res.Cookies())
	}

	if c.unauthorized(res.StatusCode) {
		c.logger.Warn(
			fmt.Sprintf("Unauthorized (%d) - redirecting to %s", res.StatusCode, c.loginPath),
			&logger.LogContext{Data: map[string]any{"method": ex.method, "url": ex.url}},
		)
		c.nav.Assign(c.loginPath)
		ex.redirected = true
		return ex, nil
	}

	body, readErr := io.ReadAll(res.Body)
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		// NOTE: an unreadable error body is treated like a non-JSON one
		if readErr != nil {
			body = nil
		}

		return ex, newRequestError(res.StatusCode, body)
	}

	if readErr != nil {
		return ex, fmt.Errorf("cannot read response body: %w", readErr)
	}

	ex.body = body
	return ex, nil
}

// unauthorized asserts whether status requires sending the Navigator to the login page.
func (c *Client) unauthorized(status int) bool {
	if status != http.StatusUnauthorized && status != http.StatusForbidden {
		return false
	}

	return c.nav.Path() != c.loginPath
}

// defaultHeaders are the headers every request carries unless the caller overrides them.
func (c *Client) defaultHeaders(ctx context.Context) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", jsonMediaType)
	h.Set("Accept", jsonMediaType)

	id := jobtracker.RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	h.Set(requestIDHeader, id)

	return h
}

// resolve parses rawURL, resolving it against the base URL when one is set.
func (c *Client) resolve(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", jobtracker.ErrNotValid, err)
	}

	if c.base != nil {
		u = c.base.ResolveReference(u)
	}

	return u, nil
}
