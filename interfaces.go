package mvckit

// Proxy is the model-facing participant contract. A proxy owns a slice of
// application data and the operations on it; the model is only the registry
// that hands proxies out by name.
//
// Embed Notifier to send notifications from a proxy; the notifier is bound
// when the proxy is registered through an App.
type Proxy interface {
	// Name returns the unique registry key for this proxy.
	Name() string
	// OnRegister runs after the proxy is stored in the model.
	OnRegister()
	// OnRemove runs after the proxy is taken out of the model.
	OnRemove()
}

// Mediator is the view-facing participant contract. A mediator wraps one
// view component, declares the notification names it wants delivered, and
// handles matching broadcasts until it is removed.
//
// Embed Notifier to send notifications from a mediator; the notifier is
// bound before OnRegister runs.
type Mediator interface {
	// Name returns the unique registry key for this mediator.
	Name() string
	// NotificationInterests lists the notification names the mediator wants
	// delivered to HandleNotification. The view consults it exactly once,
	// at registration; a changed return value takes effect only after the
	// mediator is removed and registered again.
	NotificationInterests() []string
	// HandleNotification processes one matching broadcast. It runs
	// synchronously on the broadcasting goroutine.
	HandleNotification(n *Notification)
	// OnRegister runs once the mediator is wired: it is already reachable
	// by its interests and may send notifications.
	OnRegister()
	// OnRemove runs after the mediator is unwired from the view.
	OnRemove()
}

// Command handles one broadcast of the notification name it was registered
// under. The controller produces a fresh instance per execution, so a
// command may keep per-run state in fields without leaking it between
// broadcasts.
//
// Embed Notifier to send notifications from a command; the notifier is
// bound before Execute runs.
type Command interface {
	Execute(n *Notification)
}

// CommandFactory produces a fresh Command for a single execution.
type CommandFactory func() Command

// CommandFunc adapts a plain function to the Command interface, for
// stateless commands that do not need notifier access.
type CommandFunc func(n *Notification)

// Execute implements Command.
func (f CommandFunc) Execute(n *Notification) {
	f(n)
}

// Sequence composes sub-factories into one factory whose command runs a
// fresh instance of every sub-command in order, all against the same
// notification. Nil factories and nil instances are skipped.
func Sequence(subs ...CommandFactory) CommandFactory {
	return func() Command {
		return &sequenceCommand{subs: subs}
	}
}

type sequenceCommand struct {
	Notifier
	subs []CommandFactory
}

func (c *sequenceCommand) Execute(n *Notification) {
	for _, factory := range c.subs {
		if factory == nil {
			continue
		}
		cmd := factory()
		if cmd == nil {
			continue
		}
		bindNotifier(cmd, c.App())
		cmd.Execute(n)
	}
}
