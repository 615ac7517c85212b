// Package config loads typed configuration from environment variables.
//
// Structs are described with github.com/caarlos0/env/v11 tags and an optional
// .env file is read with github.com/joho/godotenv:
//
//	type Config struct {
//		Addr     string `env:"DEMO_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Load caches the first successful result per type; Parse always reads the
// environment again. Errors wrap ErrParsingConfig, ErrLoadingEnvFile or
// ErrNilPointer and can be matched with errors.Is.
package config
