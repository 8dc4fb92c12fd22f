package mvckit

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyConstructed is returned by New when a factory option hands
	// out a Model, View, or Controller instance that is already bound to
	// another App. Core parts serve exactly one application each.
	ErrAlreadyConstructed = errors.New("mvckit: core part already bound to an application")

	// ErrNotifierUnbound is returned by Notifier.SendNotification when the
	// embedding type has not passed through a registration path yet and
	// therefore has no application to broadcast through.
	ErrNotifierUnbound = errors.New("mvckit: notifier is not bound to an application")
)

// ErrObserverNotFound is returned by View.RemoveObserver when no observer
// owned by the given handle is registered under the notification name.
type ErrObserverNotFound struct {
	// Name is the notification name the removal targeted.
	Name string
}

func (e *ErrObserverNotFound) Error() string {
	return fmt.Sprintf("mvckit: no observer registered for notification %q", e.Name)
}

// IsObserverNotFoundError reports whether err is an ErrObserverNotFound.
func IsObserverNotFoundError(err error) bool {
	var target *ErrObserverNotFound
	return errors.As(err, &target)
}
