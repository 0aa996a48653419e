// Package errors provides the classified error type used across docsite.
//
// A ClassifiedError carries a category (config, validation, color, git,
// render, ...), a severity and a free-form context map. The CLI adapter turns
// categories into process exit codes and user-facing messages.
//
// Example usage:
//
//	err := errors.ValidationError("invalid primary color").
//		WithContext("field", "theme.primary_color").
//		WithContext("value", raw).
//		WithCause(parseErr).
//		Build()
package errors
