/*
Package fetch is the shared request helper every page of the job tracker uses to talk to its API.

[*Client.Request] wraps a single HTTP exchange:
  - credentials (cookies) are attached according to a [CredentialPolicy], [CredentialsInclude] by default;
  - "Content-Type: application/json" is set unless the caller sets it differently;
  - a 401 or 403 while the [Navigator] is not on the login page
    triggers a full-page navigation to the login page and returns no value and no error;
  - any other status outside 200-299 returns a [*RequestError]
    whose message comes from the "error" or "message" field of a JSON body when available;
  - a successful response body is parsed as JSON, or yields nil when empty.

Every failure is logged once and returned as is; the Client never retries.

Navigation is a port: a [Navigator] reports the current path and performs redirects,
so a Client can be driven by a browser host, a command line, or a test.
*/
package fetch
