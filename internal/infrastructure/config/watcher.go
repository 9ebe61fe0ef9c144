package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file changes on disk and passes
// the new values to every OnConfigChange callback. Calling it twice is a
// no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.watching {
		m.viper.OnConfigChange(m.handleFileEvent)
		m.viper.WatchConfig()
		m.watching = true
	}
	return nil
}

// OnConfigChange registers fn to receive the config after each reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	cfg, subscribers, ok := m.reloadFromEvent(e)
	if !ok {
		return
	}
	for _, fn := range subscribers {
		fn(cfg)
	}
}

// reloadFromEvent re-reads the file under the lock and returns what the
// callbacks need, so they run without it.
func (m *Manager) reloadFromEvent(e fsnotify.Event) (*Config, []func(*Config), bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config: change detected")

	// Save already applied these values.
	if m.skipNextReload {
		m.skipNextReload = false
		return nil, nil, false
	}

	if err := m.viper.ReadInConfig(); err != nil {
		m.logger.Warn().Err(err).Msg("config: reload failed, keeping previous values")
		return nil, nil, false
	}
	if err := m.apply(); err != nil {
		m.logger.Warn().Err(err).Msg("config: reloaded values rejected, keeping previous values")
		return nil, nil, false
	}
	return m.config, slices.Clone(m.callbacks), true
}
