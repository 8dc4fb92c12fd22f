package mvckit

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/mvckit/pkg/logger"
	"github.com/dmitrymomot/mvckit/pkg/registry"
)

// mediatorRecord pins what registration captured: the mediator itself, its
// interest set frozen by the single NotificationInterests call, and the
// owner handle all of its observers were registered under. Removal replays
// the frozen set, so a mediator whose interests method drifts afterwards is
// still unwired cleanly.
type mediatorRecord struct {
	mediator  Mediator
	interests []string
	handle    Handle
}

// View owns notification fan-out and the mediator registry. Observers are
// kept per notification name in registration order, which is also delivery
// order.
type View struct {
	mediators *registry.Registry[mediatorRecord]
	log       *slog.Logger

	obsMu     sync.RWMutex
	observers map[string][]Observer

	mu  sync.Mutex
	app *App
}

// ViewOption configures a View during construction.
type ViewOption func(*View)

// WithViewLogger sets the logger the view writes dispatch and registry
// events to.
func WithViewLogger(log *slog.Logger) ViewOption {
	return func(v *View) {
		if log != nil {
			v.log = log
		}
	}
}

// NewView creates a view with no observers and no mediators.
func NewView(opts ...ViewOption) *View {
	v := &View{
		mediators: registry.New[mediatorRecord](),
		observers: make(map[string][]Observer),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// claim binds the view to app. A view serves exactly one application for
// its whole lifetime, so a second claim reports ErrAlreadyConstructed.
func (v *View) claim(app *App) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.app != nil {
		return ErrAlreadyConstructed
	}
	v.app = app
	return nil
}

// boundApp returns the application that claimed this view, or nil.
func (v *View) boundApp() *App {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.app
}

// RegisterObserver appends o to the delivery list for name. Observers with
// a nil handler, and registrations without a name, are ignored.
func (v *View) RegisterObserver(name string, o Observer) {
	if name == "" || o.notify == nil {
		v.log.Warn("ignoring observer registration without a name or handler",
			logger.Component("view"),
			logger.Notification(name))
		return
	}

	v.obsMu.Lock()
	v.observers[name] = append(v.observers[name], o)
	v.obsMu.Unlock()
}

// RemoveObserver drops the first observer owned by owner from the delivery
// list for name. When the list empties it is deleted outright, so an
// emptied name behaves exactly like one that never had observers. Removing
// from a name with no observer owned by owner reports ErrObserverNotFound.
func (v *View) RemoveObserver(name string, owner Handle) error {
	v.obsMu.Lock()
	defer v.obsMu.Unlock()

	list, ok := v.observers[name]
	if !ok {
		return &ErrObserverNotFound{Name: name}
	}

	for i, o := range list {
		if o.OwnedBy(owner) {
			v.observers[name] = slices.Delete(list, i, i+1)
			if len(v.observers[name]) == 0 {
				delete(v.observers, name)
			}
			return nil
		}
	}
	return &ErrObserverNotFound{Name: name}
}

// NotifyObservers delivers n to every observer registered for n.Name at the
// moment the broadcast starts. The delivery list is snapshotted first:
// handlers that register or remove observers for the same name influence
// later broadcasts, never the one in flight. Handlers run synchronously on
// the calling goroutine in registration order, and a panicking handler
// propagates to the broadcaster before the rest of the snapshot runs.
func (v *View) NotifyObservers(n *Notification) {
	if n == nil {
		return
	}

	v.obsMu.RLock()
	current, ok := v.observers[n.Name()]
	if !ok {
		v.obsMu.RUnlock()
		return
	}
	snapshot := slices.Clone(current)
	v.obsMu.RUnlock()

	v.log.Debug("dispatching notification",
		logger.Component("view"),
		logger.Notification(n.Name()),
		logger.Observers(len(snapshot)))

	for _, o := range snapshot {
		o.Notify(n)
	}
}

// ObserverCount returns the number of observers currently registered for
// name.
func (v *View) ObserverCount(name string) int {
	v.obsMu.RLock()
	defer v.obsMu.RUnlock()
	return len(v.observers[name])
}

// RegisterMediator wires m into the view: the mediator is stored under its
// name, its interests are consulted exactly once, and one observer owned by
// a fresh handle is registered per interest. Once the name is secured,
// mediators embedding Notifier are bound to the owning application, so when
// OnRegister runs last the mediator can already both receive and send.
// Registering a name that is already present is a no-op: the original
// mediator stays and m's hooks and interests are never touched.
func (v *View) RegisterMediator(m Mediator) {
	if m == nil || m.Name() == "" {
		v.log.Warn("ignoring mediator registration without a name",
			logger.Component("view"))
		return
	}
	if v.mediators.Has(m.Name()) {
		return
	}

	rec := mediatorRecord{
		mediator:  m,
		interests: slices.Clone(m.NotificationInterests()),
		handle:    NewHandle(),
	}
	if !v.mediators.PutIfAbsent(m.Name(), rec) {
		// Lost a registration race for the name; the winner stays and m is
		// left unbound.
		return
	}

	bindNotifier(m, v.boundApp())

	if len(rec.interests) > 0 {
		o := NewObserver(m.HandleNotification, rec.handle)
		for _, interest := range rec.interests {
			v.RegisterObserver(interest, o)
		}
	}

	v.log.Debug("mediator registered",
		logger.Component("view"),
		logger.Mediator(m.Name()),
		logger.Interests(rec.interests))
	m.OnRegister()
}

// Mediator returns the mediator registered under name. The second return is
// false when nothing is registered.
func (v *View) Mediator(name string) (Mediator, bool) {
	rec, ok := v.mediators.Get(name)
	if !ok {
		return nil, false
	}
	return rec.mediator, true
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	return v.mediators.Has(name)
}

// RemoveMediator unwires the mediator registered under name: the observer
// for every frozen interest is dropped, the OnRemove hook runs, and the
// mediator is returned. The second return is false when nothing was
// registered.
func (v *View) RemoveMediator(name string) (Mediator, bool) {
	rec, ok := v.mediators.Remove(name)
	if !ok {
		return nil, false
	}

	for _, interest := range rec.interests {
		if err := v.RemoveObserver(interest, rec.handle); err != nil {
			// Already gone when a handler raced the removal; nothing left
			// to unwire for this interest.
			v.log.Debug("mediator observer already removed",
				logger.Component("view"),
				logger.Mediator(name),
				logger.Notification(interest))
		}
	}

	v.log.Debug("mediator removed",
		logger.Component("view"),
		logger.Mediator(name))
	rec.mediator.OnRemove()
	return rec.mediator, true
}

// MediatorNames returns the names of all registered mediators in lexical
// order.
func (v *View) MediatorNames() []string {
	return v.mediators.Names()
}
