/*
Package req validates the payloads a client sends and decodes JSON documents into them.

Payloads are pointers to structs using "json" struct tags to name fields
and "validate" struct tags from github.com/go-playground/validator/v10 to set rules.
The "enum" rule checks a field, or each item of a slice field, is a valid jobtracker.Enumerable.

Failed rules are reported as [ValidationErrors], which unwrap to jobtracker.ErrNotValid,
so callers handle issues consistently whatever the payload.
*/
package req
