// Package config loads typed configuration structs from environment
// variables, with optional .env file support and struct validation.
//
// Configuration is declared with struct tags: `env:` tags drive parsing
// (github.com/caarlos0/env) and `validate:` tags drive validation
// (github.com/go-playground/validator). A .env file in the working
// directory is loaded once per process if present.
//
//	type ServerConfig struct {
//		Host string `env:"HOST" envDefault:"localhost"`
//		Port int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
