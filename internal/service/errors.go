package service

import "errors"

// Workflow error taxonomy. Handlers map these onto HTTP status codes with
// errors.Is; workflows wrap them with fmt.Errorf("%w: ...") to add detail.
var (
	ErrValidation        = errors.New("validation failed")   // Missing or malformed field
	ErrNotFound          = errors.New("not found")           // Missing entity
	ErrConflict          = errors.New("conflict")            // Duplicate username/email, delivery already exists
	ErrInvalidState      = errors.New("invalid state")       // Illegal order/delivery transition
	ErrInsufficientStock = errors.New("insufficient stock")  // Requested quantity exceeds stock
)
