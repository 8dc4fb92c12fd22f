package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	defaultEnvLoaded sync.Once

	validate = validator.New()
)

// Load parses environment variables into the provided configuration struct
// and validates the result.
//
// On the first call in a process it attempts to load a .env file from the
// working directory; a missing file is not an error. Fields are populated
// from `env:` tags and checked against `validate:` tags:
//
//	type Config struct {
//		Host    string `env:"HOST" envDefault:"localhost"`
//		Port    int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
//		APIKey  string `env:"API_KEY,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if cfg == nil {
		return ErrNilPointer
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
