package order

import "errors"

var (
	// ErrValidation is returned when an order or line item is constructed
	// from out-of-range or missing required fields
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition is returned when a status transition is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when a status is not a known lifecycle state
	ErrInvalidStatus = errors.New("invalid status")
)
