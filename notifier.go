package mvckit

import "sync"

// appBinder is satisfied by types embedding Notifier. Registration paths use
// it to hand the owning App to a participant without the participant naming
// the App in its own constructor.
type appBinder interface {
	bindApp(app *App)
}

// bindNotifier binds v's embedded Notifier to app, when v embeds one and app
// is non-nil. Participants without a Notifier pass through untouched.
func bindNotifier(v any, app *App) {
	if app == nil {
		return
	}
	if b, ok := v.(appBinder); ok {
		b.bindApp(app)
	}
}

// Notifier gives an embedding proxy, mediator, or command a SendNotification
// bound to the application it was registered with. The zero Notifier is
// unbound and reports ErrNotifierUnbound until the embedding value passes
// through a registration path (App.RegisterProxy, App.RegisterMediator, or
// command construction inside the controller).
//
// Embed it by value and register the participant by pointer; binding needs
// the addressable embedded field.
type Notifier struct {
	mu  sync.RWMutex
	app *App
}

func (n *Notifier) bindApp(app *App) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.app = app
}

// App returns the application this notifier is bound to, or nil while
// unbound.
func (n *Notifier) App() *App {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.app
}

// SendNotification broadcasts a notification through the bound application.
// It is the one-liner participants use instead of holding an App field of
// their own.
func (n *Notifier) SendNotification(name string, opts ...NotificationOption) error {
	app := n.App()
	if app == nil {
		return ErrNotifierUnbound
	}
	app.SendNotification(name, opts...)
	return nil
}
