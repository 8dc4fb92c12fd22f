package mvckit

import (
	"fmt"
	"log/slog"
)

// App is one application context: exactly one model, one view, and one
// controller, aggregated behind a single registration and broadcast
// surface. There is no process-global instance; code that needs the app
// receives it explicitly or reaches it through an embedded Notifier.
// Multiple apps in one process are fully isolated from each other.
type App struct {
	model      *Model
	view       *View
	controller *Controller
	log        *slog.Logger

	streamBuffer int
}

type options struct {
	logger       *slog.Logger
	streamBuffer int
	model        func() *Model
	view         func() *View
	controller   func(*View) *Controller
}

// Option configures an App during construction.
type Option func(*options)

// WithLogger sets the logger shared by the app and, through the default
// factories, its model, view, and controller.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithStreamBuffer sets the per-consumer channel capacity handed out by
// Stream. Non-positive values are ignored.
func WithStreamBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.streamBuffer = n
		}
	}
}

// WithModel replaces the default model factory, letting a pre-configured or
// extended model serve the app. The factory must hand out an instance not
// already bound to another app.
func WithModel(factory func() *Model) Option {
	return func(o *options) {
		if factory != nil {
			o.model = factory
		}
	}
}

// WithView replaces the default view factory. The factory must hand out an
// instance not already bound to another app.
func WithView(factory func() *View) Option {
	return func(o *options) {
		if factory != nil {
			o.view = factory
		}
	}
}

// WithController replaces the default controller factory. The factory
// receives the app's view and must return a controller constructed on it.
func WithController(factory func(*View) *Controller) Option {
	return func(o *options) {
		if factory != nil {
			o.controller = factory
		}
	}
}

// New creates an application context. Core parts come from the option
// factories, or from plain NewModel/NewView/NewController when no factory
// was given. Each part is claimed for this app as it is built; a factory
// that hands out a part already claimed by another app fails construction
// with ErrAlreadyConstructed.
func New(opts ...Option) (*App, error) {
	cfg := &options{
		logger:       slog.Default(),
		streamBuffer: DefaultStreamBuffer,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.model == nil {
		cfg.model = func() *Model {
			return NewModel(WithModelLogger(cfg.logger))
		}
	}
	if cfg.view == nil {
		cfg.view = func() *View {
			return NewView(WithViewLogger(cfg.logger))
		}
	}
	if cfg.controller == nil {
		cfg.controller = func(v *View) *Controller {
			return NewController(v, WithControllerLogger(cfg.logger))
		}
	}

	app := &App{
		log:          cfg.logger,
		streamBuffer: cfg.streamBuffer,
	}

	model := cfg.model()
	if model == nil {
		return nil, fmt.Errorf("mvckit: model factory returned nil")
	}
	if err := model.claim(app); err != nil {
		return nil, err
	}

	view := cfg.view()
	if view == nil {
		return nil, fmt.Errorf("mvckit: view factory returned nil")
	}
	if err := view.claim(app); err != nil {
		return nil, err
	}

	controller := cfg.controller(view)
	if controller == nil {
		return nil, fmt.Errorf("mvckit: controller factory returned nil")
	}
	if controller.view != view {
		return nil, fmt.Errorf("mvckit: controller is not constructed on the application view")
	}
	if err := controller.claim(app); err != nil {
		return nil, err
	}

	app.model = model
	app.view = view
	app.controller = controller
	return app, nil
}

// MustNew is like New but panics on construction failure, for wiring done
// once at program start.
func MustNew(opts ...Option) *App {
	app, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return app
}

// Model returns the app's model, or nil on a zero App.
func (a *App) Model() *Model {
	return a.model
}

// View returns the app's view, or nil on a zero App.
func (a *App) View() *View {
	return a.view
}

// Controller returns the app's controller, or nil on a zero App.
func (a *App) Controller() *Controller {
	return a.controller
}

// RegisterProxy stores p in the model. Proxies embedding Notifier can send
// notifications from their OnRegister hook onward.
func (a *App) RegisterProxy(p Proxy) {
	if a.model == nil {
		return
	}
	a.model.RegisterProxy(p)
}

// Proxy returns the proxy registered under name, or nil and false.
func (a *App) Proxy(name string) (Proxy, bool) {
	if a.model == nil {
		return nil, false
	}
	return a.model.Proxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (a *App) HasProxy(name string) bool {
	if a.model == nil {
		return false
	}
	return a.model.HasProxy(name)
}

// RemoveProxy removes and returns the proxy registered under name.
func (a *App) RemoveProxy(name string) (Proxy, bool) {
	if a.model == nil {
		return nil, false
	}
	return a.model.RemoveProxy(name)
}

// ProxyNames returns the names of all registered proxies in lexical order.
func (a *App) ProxyNames() []string {
	if a.model == nil {
		return nil
	}
	return a.model.ProxyNames()
}

// RegisterMediator wires m into the view. Mediators embedding Notifier can
// send notifications from their OnRegister hook onward.
func (a *App) RegisterMediator(m Mediator) {
	if a.view == nil {
		return
	}
	a.view.RegisterMediator(m)
}

// Mediator returns the mediator registered under name, or nil and false.
func (a *App) Mediator(name string) (Mediator, bool) {
	if a.view == nil {
		return nil, false
	}
	return a.view.Mediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (a *App) HasMediator(name string) bool {
	if a.view == nil {
		return false
	}
	return a.view.HasMediator(name)
}

// RemoveMediator unwires and returns the mediator registered under name.
func (a *App) RemoveMediator(name string) (Mediator, bool) {
	if a.view == nil {
		return nil, false
	}
	return a.view.RemoveMediator(name)
}

// MediatorNames returns the names of all registered mediators in lexical
// order.
func (a *App) MediatorNames() []string {
	if a.view == nil {
		return nil
	}
	return a.view.MediatorNames()
}

// RegisterCommand binds factory to the notification name in the controller.
func (a *App) RegisterCommand(name string, factory CommandFactory) {
	if a.controller == nil {
		return
	}
	a.controller.RegisterCommand(name, factory)
}

// HasCommand reports whether a command is bound to name.
func (a *App) HasCommand(name string) bool {
	if a.controller == nil {
		return false
	}
	return a.controller.HasCommand(name)
}

// RemoveCommand unbinds the command for name, reporting whether one was
// bound.
func (a *App) RemoveCommand(name string) bool {
	if a.controller == nil {
		return false
	}
	return a.controller.RemoveCommand(name)
}

// CommandNames returns the bound notification names in lexical order.
func (a *App) CommandNames() []string {
	if a.controller == nil {
		return nil
	}
	return a.controller.CommandNames()
}

// SendNotification builds a notification and fans it out synchronously
// through the view. It is the single broadcast entry point; commands,
// mediators, and plain observers all receive the same dispatch.
func (a *App) SendNotification(name string, opts ...NotificationOption) {
	if a.view == nil {
		return
	}
	a.view.NotifyObservers(NewNotification(name, opts...))
}

// NotifyObservers fans out an already-built notification through the view.
// SendNotification is the common path; this entry exists for callers that
// construct or reuse Notification values themselves.
func (a *App) NotifyObservers(n *Notification) {
	if a.view == nil {
		return
	}
	a.view.NotifyObservers(n)
}
