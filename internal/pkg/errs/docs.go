// Package errs provides the typed errors shared by every layer of the perfumery pipeline.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details (parameter name, offending value, cause)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP adapter maps the sentinels to status codes: ErrObjectNotFound to 404,
// ErrInsufficientStock to 409 and the value errors to 400.
package errs
