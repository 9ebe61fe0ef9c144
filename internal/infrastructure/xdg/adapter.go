// Package xdg exposes the application's XDG paths through port.XDGPaths.
package xdg

import (
	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config package helpers.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) RuleSearchDirs() ([]string, error) {
	return config.GetRuleSearchDirs()
}

func (a *Adapter) UserRuleDir() (string, error) {
	return config.GetUserRuleDir()
}

func (a *Adapter) ActiveRuleFile() (string, error) {
	return config.GetActiveRuleFile()
}

func (a *Adapter) ManDir() (string, error) {
	return config.GetManDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
