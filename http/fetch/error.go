package fetch

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/jobtracker"
)

// A RequestError is a response outside the 200-299 range.
type RequestError struct {
	Message    string
	StatusCode int
	Payload    Payload
}

// newRequestError constructs a *RequestError from the body of a failed response.
//
// The message is the first non-empty string found in the "error" or "message"
// fields of a JSON object body.
// Otherwise, the message notes the status code.
func newRequestError(status int, body []byte) *RequestError {
	re := &RequestError{
		Message:    fmt.Sprintf("Request failed with status %d", status),
		StatusCode: status,
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return re
	}

	re.Payload = Payload{Data: data, Valid: true}
	for _, key := range []string{"error", "message"} {
		if msg, ok := re.Payload.StringField(key); ok && msg != "" {
			re.Message = msg
			break
		}
	}

	return re
}

func (e *RequestError) Error() string { return e.Message }

// Unwrap classifies the status code into one of the sentinel errors.
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return jobtracker.ErrNotValid
	case http.StatusUnauthorized:
		return jobtracker.ErrUnauthorized
	case http.StatusForbidden:
		return jobtracker.ErrForbidden
	case http.StatusNotFound:
		return jobtracker.ErrNotExist
	case http.StatusConflict:
		return jobtracker.ErrConflict
	default:
		return jobtracker.ErrUnexpected
	}
}

// FieldErrors retrieves the per-field messages of a validation failure,
// found under the "errors" key of the payload.
func (e *RequestError) FieldErrors() map[string]string {
	m, ok := e.Payload.Field("errors")
	if !ok {
		return nil
	}

	fields, ok := m.(map[string]any)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = fmt.Sprint(v)
	}

	return out
}

// A Payload is the parsed JSON body of a failed response, if there was one.
// Valid is false when the body was empty, not JSON, or JSON null.
type Payload struct {
	Data  any
	Valid bool
}

// Field retrieves the value under key when Data is a JSON object.
func (p Payload) Field(key string) (any, bool) {
	if !p.Valid {
		return nil, false
	}

	m, ok := p.Data.(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := m[key]
	return v, ok
}

// StringField retrieves the string value under key when Data is a JSON object.
func (p Payload) StringField(key string) (string, bool) {
	v, ok := p.Field(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

// Decode converts Data into the value pointed to by v.
func (p Payload) Decode(v any) error {
	if !p.Valid {
		return fmt.Errorf("%w: no payload", jobtracker.ErrMissingData)
	}

	b, err := json.Marshal(p.Data)
	if err != nil {
		return fmt.Errorf("%w: %s", jobtracker.ErrBadFormat, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %s", jobtracker.ErrBadFormat, err)
	}

	return nil
}
