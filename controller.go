package mvckit

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/mvckit/pkg/logger"
	"github.com/dmitrymomot/mvckit/pkg/registry"
)

// Controller binds notification names to command factories. For each bound
// name it installs exactly one observer in its view, owned by the
// controller's own handle, no matter how many times the name is
// re-registered; executions then produce a fresh command instance per
// broadcast.
type Controller struct {
	commands *registry.Registry[CommandFactory]
	view     *View
	handle   Handle
	log      *slog.Logger

	// regMu serializes registration bookkeeping so concurrent registrations
	// of one name cannot install a second observer for it.
	regMu sync.Mutex

	mu  sync.Mutex
	app *App
}

// ControllerOption configures a Controller during construction.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger the controller writes command events
// to.
func WithControllerLogger(log *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController creates a controller that installs its command observers
// into view. The view must outlive the controller.
func NewController(view *View, opts ...ControllerOption) *Controller {
	c := &Controller{
		commands: registry.New[CommandFactory](),
		view:     view,
		handle:   NewHandle(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// claim binds the controller to app. A controller serves exactly one
// application for its whole lifetime, so a second claim reports
// ErrAlreadyConstructed.
func (c *Controller) claim(app *App) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.app != nil {
		return ErrAlreadyConstructed
	}
	c.app = app
	return nil
}

// boundApp returns the application that claimed this controller, or nil.
func (c *Controller) boundApp() *App {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.app
}

// RegisterCommand binds factory to the notification name. The first
// registration for a name installs the controller's observer for it; later
// registrations only replace the factory, so register/remove cycles can
// never stack duplicate observers. Registrations without a name or factory
// are ignored.
func (c *Controller) RegisterCommand(name string, factory CommandFactory) {
	if name == "" || factory == nil {
		c.log.Warn("ignoring command registration without a name or factory",
			logger.Component("controller"),
			logger.Command(name))
		return
	}
	if c.view == nil {
		c.log.Warn("controller has no view; command not registered",
			logger.Component("controller"),
			logger.Command(name))
		return
	}

	c.regMu.Lock()
	defer c.regMu.Unlock()

	if !c.commands.Has(name) {
		c.view.RegisterObserver(name, NewObserver(c.ExecuteCommand, c.handle))
	}
	c.commands.Put(name, factory)
	c.log.Debug("command registered",
		logger.Component("controller"),
		logger.Command(name))
}

// ExecuteCommand runs the command bound to the notification's name against
// n. Every execution constructs a fresh instance through the factory and,
// for commands embedding Notifier, binds it to the owning application
// before Execute runs. Names with no bound command are ignored.
func (c *Controller) ExecuteCommand(n *Notification) {
	if n == nil {
		return
	}
	factory, ok := c.commands.Get(n.Name())
	if !ok {
		return
	}

	cmd := factory()
	if cmd == nil {
		c.log.Warn("command factory returned nil",
			logger.Component("controller"),
			logger.Command(n.Name()))
		return
	}

	c.log.Debug("executing command",
		logger.Component("controller"),
		logger.Command(n.Name()))
	bindNotifier(cmd, c.boundApp())
	cmd.Execute(n)
}

// HasCommand reports whether a command is bound to name.
func (c *Controller) HasCommand(name string) bool {
	return c.commands.Has(name)
}

// RemoveCommand unbinds the command for name: the controller's observer is
// removed from the view first, then the factory entry. It reports whether a
// command was bound.
func (c *Controller) RemoveCommand(name string) bool {
	c.regMu.Lock()
	defer c.regMu.Unlock()

	if !c.commands.Has(name) {
		return false
	}
	if c.view != nil {
		if err := c.view.RemoveObserver(name, c.handle); err != nil {
			c.log.Warn("command observer already removed",
				logger.Component("controller"),
				logger.Command(name),
				logger.Error(err))
		}
	}
	c.commands.Remove(name)
	c.log.Debug("command removed",
		logger.Component("controller"),
		logger.Command(name))
	return true
}

// CommandNames returns the bound notification names in lexical order.
func (c *Controller) CommandNames() []string {
	return c.commands.Names()
}
