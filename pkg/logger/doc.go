// Package logger provides structured logging setup on top of log/slog,
// along with attribute constructors for the framework's domain vocabulary.
//
// The factory covers the common cases (text or JSON output, level control,
// static attributes) while keeping the result an ordinary *slog.Logger that
// callers pass around explicitly:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "orders")),
//	)
//
// Programs that also log through the slog package functions can install the
// result process-wide:
//
//	logger.SetAsDefault(log)
//
// Attribute constructors keep log keys consistent across the codebase:
//
//	log.Debug("mediator registered",
//		logger.Mediator(name),
//		logger.Interests(interests),
//	)
package logger
