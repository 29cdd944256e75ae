package config

import (
	"sync"

	"github.com/glintedit/glint/internal/config/notify"
)

// Manager holds the active configuration and fans changes out to
// observers. Updates are validated before they replace the current value,
// so observers only ever see configurations that passed Validate.
type Manager struct {
	mu       sync.RWMutex
	current  Config
	notifier *notify.Notifier[Config]
}

// NewManager creates a manager seeded with the given configuration.
func NewManager(cfg Config) *Manager {
	return &Manager{
		current:  cfg,
		notifier: notify.NewNotifier[Config](),
	}
}

// Current returns the active configuration.
func (m *Manager) Current() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update validates and installs a new configuration, then notifies
// observers. An identical configuration installs without notification.
func (m *Manager) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if cfg == m.current {
		m.mu.Unlock()
		return nil
	}
	m.current = cfg
	m.mu.Unlock()

	m.notifier.Publish(cfg)
	return nil
}

// OnChange registers an observer called with each new configuration.
func (m *Manager) OnChange(fn notify.Observer[Config]) *notify.Subscription {
	return m.notifier.Subscribe(fn)
}
