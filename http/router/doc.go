/*
Package router maps the paths of the job tracker client to the views rendering them
and hosts those views over HTTP.

A [Table] is an ordered list of [Route]s.
Each Route binds a literal path to either a [View] or a redirect target;
the first Route whose path equals the requested path wins.
There is no wildcard or parameter matching.
[Table.Resolve] follows redirects until a View is reached,
leaving unmatched paths to the caller through jobtracker.ErrNotExist.

A [*Router] is a thin wrapper around [mux.Router].
[Router.Mount] registers a Table: redirect Routes answer with 302 Found
and view Routes call a shell handler with the View in the request context.
Requests matching no Route go to the handler set with [Router.HandleNotFound].
*/
package router
