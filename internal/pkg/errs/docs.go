// Package errs provides standardized error types for the MOTA gateway.
// Every type follows the same shape so callers can classify failures with
// errors.Is against a sentinel while still reading the offending parameter:
//
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an object could not be found (locally or in the backend)
//
// Each type has a constructor with and without cause, an Error method and an
// Unwrap method returning the sentinel.
package errs
