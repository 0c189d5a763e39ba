package fetch

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/jobtracker/logger"
)

// A ClientOptFn is a functional option configuring a Client when constructing a new one.
type ClientOptFn func(*Client)

// WithBaseURL resolves every request URL against u.
// CredentialsSameOrigin compares request URLs to u.
func WithBaseURL(u *url.URL) ClientOptFn {
	return func(c *Client) {
		c.base = u
	}
}

// WithDoer sets the Doer executing requests.
func WithDoer(d Doer) ClientOptFn {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithJar sets the cookie jar holding credentials.
// A nil jar disables cookie handling by the Client.
func WithJar(jar http.CookieJar) ClientOptFn {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithLoginPath sets the path the Navigator is sent to on a 401 or 403.
func WithLoginPath(path string) ClientOptFn {
	return func(c *Client) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithLogger sets the logger.Logger the Client reports with.
func WithLogger(l logger.Logger) ClientOptFn {
	return func(c *Client) {
		c.logger = l
	}
}
