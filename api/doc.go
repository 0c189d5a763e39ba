/*
Package api is a typed client for the job tracker backend.

A [*Client] sends requests through a fetch.Client,
so every call carries the session cookie
and an expired session sends the Navigator to the login page.
When that happens, methods return [ErrRedirected].

Payloads are validated with http/req before anything is sent;
failing payloads return req.ValidationErrors, unwrapping to jobtracker.ErrNotValid.
Responses the backend rejects return a *fetch.RequestError.
*/
package api
