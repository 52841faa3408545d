// Package errs provides standardized error types for the cakery application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the application's failure taxonomy:
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsRequiredError: a required value was missing
//   - UnauthorizedError: a request was rejected by the session guard
//   - StorageError: the underlying data store reported a fault
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// ErrInvalidCredentials is sentinel-only: login failures deliberately carry
// no detail about whether the username or the password was wrong.
package errs
