// Package errs provides standardized error types for the depot application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the depot service and the adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing (empty name, empty parcel ID)
//   - ValueIsInvalidError: a value cannot be parsed or is otherwise invalid
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed range
//   - ObjectNotFoundError: a parcel or customer cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) usable with errors.Is
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs
