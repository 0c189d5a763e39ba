package fetch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/xy-planning-network/jobtracker"
)

const jsonMediaType = "application/json"

// Options describe a single request.
// Use Opt functions to configure Options rather than constructing them directly.
type Options struct {
	Method      string
	Header      http.Header
	Body        io.Reader
	Credentials CredentialPolicy
}

// An Opt configures the Options of a single request.
type Opt func(*Options) error

// newOptions applies opts over the default Options.
func newOptions(opts ...Opt) (*Options, error) {
	o := &Options{
		Method:      http.MethodGet,
		Header:      make(http.Header),
		Credentials: CredentialsInclude,
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// headers merges the caller's headers over the defaults.
func (o *Options) headers(defaults http.Header) http.Header {
	h := defaults.Clone()
	for k, vs := range o.Header {
		h[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}

	return h
}

// Method sets the HTTP method. The default is GET.
func Method(method string) Opt {
	return func(o *Options) error {
		if method == "" {
			return fmt.Errorf("%w: empty method", jobtracker.ErrNotValid)
		}

		o.Method = method
		return nil
	}
}

// Header sets key to val, overriding any default header of the same name.
func Header(key, val string) Opt {
	return func(o *Options) error {
		o.Header.Set(key, val)
		return nil
	}
}

// Headers copies every key-value pair in h,
// overriding any default header of the same name.
func Headers(h map[string]string) Opt {
	return func(o *Options) error {
		for k, v := range h {
			o.Header.Set(k, v)
		}

		return nil
	}
}

// Body JSON encodes v as the request body.
func Body(v any) Opt {
	return func(o *Options) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: cannot encode body: %s", jobtracker.ErrBadFormat, err)
		}

		o.Body = bytes.NewReader(b)
		return nil
	}
}

// RawBody sends r as the request body without encoding it.
func RawBody(r io.Reader) Opt {
	return func(o *Options) error {
		o.Body = r
		return nil
	}
}

// Credentials sets the CredentialPolicy. The default is CredentialsInclude.
func Credentials(cp CredentialPolicy) Opt {
	return func(o *Options) error {
		if err := cp.Valid(); err != nil {
			return err
		}

		o.Credentials = cp
		return nil
	}
}
