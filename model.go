package mvckit

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/mvckit/pkg/logger"
	"github.com/dmitrymomot/mvckit/pkg/registry"
)

// Model is the name-keyed registry of application proxies. It holds no
// dispatch logic of its own: proxies encapsulate data access and the model
// only stores and hands them out.
type Model struct {
	proxies *registry.Registry[Proxy]
	log     *slog.Logger

	mu  sync.Mutex
	app *App
}

// ModelOption configures a Model during construction.
type ModelOption func(*Model)

// WithModelLogger sets the logger the model writes registry events to.
func WithModelLogger(log *slog.Logger) ModelOption {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// NewModel creates an empty proxy registry.
func NewModel(opts ...ModelOption) *Model {
	m := &Model{
		proxies: registry.New[Proxy](),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// claim binds the model to app. A model serves exactly one application for
// its whole lifetime, so a second claim reports ErrAlreadyConstructed.
func (m *Model) claim(app *App) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.app != nil {
		return ErrAlreadyConstructed
	}
	m.app = app
	return nil
}

// boundApp returns the application that claimed this model, or nil.
func (m *Model) boundApp() *App {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.app
}

// RegisterProxy stores p under its name, replacing any previous entry
// without ceremony, and then runs the proxy's OnRegister hook. The replaced
// proxy, if any, gets no OnRemove call. Proxies embedding Notifier are
// bound to the owning application before the hook runs.
func (m *Model) RegisterProxy(p Proxy) {
	if p == nil || p.Name() == "" {
		m.log.Warn("ignoring proxy registration without a name",
			logger.Component("model"))
		return
	}

	bindNotifier(p, m.boundApp())
	m.proxies.Put(p.Name(), p)
	m.log.Debug("proxy registered",
		logger.Component("model"),
		logger.Proxy(p.Name()))
	p.OnRegister()
}

// Proxy returns the proxy registered under name. The second return is false
// when nothing is registered.
func (m *Model) Proxy(name string) (Proxy, bool) {
	return m.proxies.Get(name)
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	return m.proxies.Has(name)
}

// RemoveProxy takes the proxy registered under name out of the model, runs
// its OnRemove hook, and returns it so the caller can dispose of held
// resources. The second return is false when nothing was registered.
func (m *Model) RemoveProxy(name string) (Proxy, bool) {
	p, ok := m.proxies.Remove(name)
	if !ok {
		return nil, false
	}

	m.log.Debug("proxy removed",
		logger.Component("model"),
		logger.Proxy(name))
	p.OnRemove()
	return p, true
}

// ProxyNames returns the names of all registered proxies in lexical order.
func (m *Model) ProxyNames() []string {
	return m.proxies.Names()
}
