package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Notification records a notification name under the key "notification".
func Notification(name string) slog.Attr {
	return slog.String("notification", name)
}

// Mediator records a mediator name under the key "mediator".
func Mediator(name string) slog.Attr {
	return slog.String("mediator", name)
}

// Proxy records a proxy name under the key "proxy".
func Proxy(name string) slog.Attr {
	return slog.String("proxy", name)
}

// Command records the notification name a command is bound to under the
// key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Observers records an observer count under the key "observers".
func Observers(count int) slog.Attr {
	return slog.Int("observers", count)
}

// Interests records a mediator's notification interests under the key
// "interests".
func Interests(names []string) slog.Attr {
	return slog.Any("interests", names)
}
