package fetch

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/jobtracker"
)

// A CredentialPolicy controls whether cookies accompany a request.
type CredentialPolicy string

const (
	// CredentialsInclude sends and stores cookies for every request.
	CredentialsInclude CredentialPolicy = "include"

	// CredentialsOmit never sends or stores cookies.
	CredentialsOmit CredentialPolicy = "omit"

	// CredentialsSameOrigin sends and stores cookies only for requests
	// to the origin of the Client's base URL.
	CredentialsSameOrigin CredentialPolicy = "same-origin"
)

func (cp CredentialPolicy) String() string { return string(cp) }

func (cp CredentialPolicy) Valid() error {
	switch cp {
	case CredentialsInclude, CredentialsOmit, CredentialsSameOrigin:
		return nil
	default:
		return fmt.Errorf("%w: credential policy %q", jobtracker.ErrNotValid, string(cp))
	}
}

// applies asserts whether cookies are exchanged for u under the policy.
func (cp CredentialPolicy) applies(base, u *url.URL) bool {
	switch cp {
	case CredentialsInclude:
		return true
	case CredentialsSameOrigin:
		return base != nil && sameOrigin(base, u)
	default:
		return false
	}
}

// attachCookies adds to r the cookies jar holds for its URL.
func attachCookies(jar http.CookieJar, r *http.Request) {
	for _, c := range jar.Cookies(r.URL) {
		r.AddCookie(c)
	}
}

func sameOrigin(a, b *url.URL) bool {
	return a.Scheme == b.Scheme && a.Host == b.Host
}
