package validator

import "errors"

var (
	// ErrValidationFailed is the cause of rule errors that carry no more specific failure.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")
)
