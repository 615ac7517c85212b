package handler

import "errors"

var (
	// ErrNilValidator is the panic value of Validate when given a nil validator.
	ErrNilValidator = errors.New("handler: nil request validator")
	// ErrInvalidFailureStatus is returned by LoadConfig for statuses outside 400-599.
	ErrInvalidFailureStatus = errors.New("handler: failure status must be a 4xx or 5xx code")
)
