package handler

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/paramguard/pkg/config"
)

// Config tunes how validation failures are reported.
type Config struct {
	// FailureStatus is the response status for failed validation.
	FailureStatus int `env:"VALIDATION_FAILURE_STATUS" envDefault:"400"`
	// LogFailures enables the warn-level log line per failed request.
	LogFailures bool `env:"VALIDATION_LOG_FAILURES" envDefault:"true"`
}

// DefaultConfig matches the env defaults: status 400 and logging on.
func DefaultConfig() Config {
	return Config{
		FailureStatus: http.StatusBadRequest,
		LogFailures:   true,
	}
}

// LoadConfig reads Config from the environment. On error it returns
// DefaultConfig along with the error.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.FailureStatus < 400 || c.FailureStatus > 599 {
		return fmt.Errorf("%w: got %d", ErrInvalidFailureStatus, c.FailureStatus)
	}
	return nil
}
