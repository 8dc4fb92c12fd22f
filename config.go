package mvckit

import (
	"log/slog"

	"github.com/dmitrymomot/mvckit/pkg/config"
	"github.com/dmitrymomot/mvckit/pkg/logger"
)

// Config carries the environment-tunable settings NewFromEnv builds an App
// from. Zero-configuration deployments get a text logger at info level and
// the default stream buffer.
type Config struct {
	// AppName is attached to every log record as the "app" attribute.
	AppName string `env:"MVCKIT_APP_NAME" envDefault:"mvckit"`
	// LogLevel sets the minimum level records must have to be written.
	LogLevel slog.Level `env:"MVCKIT_LOG_LEVEL" envDefault:"info"`
	// LogFormat selects the log output encoding, "json" or "text".
	LogFormat logger.Format `env:"MVCKIT_LOG_FORMAT" envDefault:"text"`
	// StreamBuffer is the per-consumer channel capacity handed out by
	// App.Stream.
	StreamBuffer int `env:"MVCKIT_STREAM_BUFFER" envDefault:"64" validate:"min=1"`
}

// NewFromEnv builds an App configured from environment variables: a logger
// with the configured level, format, and app name, and the configured
// stream buffer. Options given here are applied after the environment, so
// they win on conflict.
func NewFromEnv(opts ...Option) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithAttr(slog.String("app", cfg.AppName)),
	)

	merged := make([]Option, 0, len(opts)+2)
	merged = append(merged, WithLogger(log), WithStreamBuffer(cfg.StreamBuffer))
	merged = append(merged, opts...)
	return New(merged...)
}
