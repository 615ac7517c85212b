package binder

import "errors"

// Common binding errors
var (
	ErrInvalidForm  = errors.New("failed to parse form data")
	ErrInvalidQuery = errors.New("failed to parse query parameters")
)
