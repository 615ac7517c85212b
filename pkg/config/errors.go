package config

import "errors"

var (
	// ErrParsingConfig wraps failures reported by the env parser.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly named .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilPointer is returned when Load or Parse receives a nil pointer.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
