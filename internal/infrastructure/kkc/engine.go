// Package kkc implements the conversion engine surface the shortcut editor
// needs: a rule catalog over libkkc rule directories, key description
// parsing, and user rules layered over a parent rule's keymaps.
package kkc

import (
	"context"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

// DefaultUserRulePrefix names user rule directories "<prefix>:<parent>".
const DefaultUserRulePrefix = "kkc-shortcuts"

var _ port.ConversionEngine = (*Engine)(nil)

// Engine is a port.ConversionEngine backed by rule files on disk.
type Engine struct {
	*Catalog

	prefix string
	store  port.KeymapStore
}

// Option configures an Engine.
type Option func(*Engine)

// WithKeymapStore makes every user rule persist through store instead of
// the default JSON files under the user rule base path.
func WithKeymapStore(store port.KeymapStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithUserRulePrefix overrides DefaultUserRulePrefix.
func WithUserRulePrefix(prefix string) Option {
	return func(e *Engine) {
		if prefix != "" {
			e.prefix = prefix
		}
	}
}

// NewEngine creates an engine over catalog.
func NewEngine(catalog *Catalog, opts ...Option) *Engine {
	e := &Engine{
		Catalog: catalog,
		prefix:  DefaultUserRulePrefix,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OpenUserRule opens the user rule derived from rule, creating its storage
// under basePath when needed.
func (e *Engine) OpenUserRule(ctx context.Context, rule entity.RuleMetadata, basePath string) (port.UserRule, error) {
	store := e.store
	if store == nil {
		store = NewJSONStore(basePath, e.prefix)
	}
	return openUserRule(ctx, e.Catalog, store, rule)
}

// ParseKeyDescription implements port.ConversionEngine.
func (e *Engine) ParseKeyDescription(raw string) (entity.KeyEvent, error) {
	return ParseKeyEvent(raw)
}

// CommandLabel implements port.ConversionEngine.
func (e *Engine) CommandLabel(command string) string {
	return CommandLabel(command)
}

// Commands implements port.ConversionEngine.
func (e *Engine) Commands() []string {
	return Commands()
}
