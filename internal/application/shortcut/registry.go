// Package shortcut holds the in-memory shortcut registry of the active rule.
//
// The registry mirrors the live keymaps of one user rule. Every mutation of
// its entries is paired with the matching mutation of the engine keymap, and
// a dirty flag tracks whether the live keymaps diverge from what was last
// loaded or saved. A Registry is not safe for concurrent use; it is meant to
// be driven from a single UI loop.
package shortcut

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// Registry is the ordered collection of bindings for the active rule.
type Registry struct {
	engine   port.ConversionEngine
	basePath string

	entries  []entity.Binding
	userRule port.UserRule
	ruleName string
	dirty    bool

	observers      []observerSlot
	nextObserverID int
}

type observerSlot struct {
	id       int
	observer Observer
}

// NewRegistry creates an empty registry. User rules are opened under basePath.
func NewRegistry(engine port.ConversionEngine, basePath string) *Registry {
	return &Registry{
		engine:   engine,
		basePath: basePath,
	}
}

// Load replaces the registry content with the bindings of ruleName.
//
// An unknown rule or a user rule that cannot be opened leaves the registry
// empty and is not reported as an error. The only error returned is the
// context's.
func (r *Registry) Load(ctx context.Context, ruleName string) error {
	ctx = logging.WithRule(ctx, ruleName)
	log := logging.FromContext(ctx)

	r.setDirty(false)
	r.notifyReset(true)
	defer r.notifyReset(false)

	r.release(ctx)
	r.entries = nil
	r.ruleName = ""

	if err := ctx.Err(); err != nil {
		return err
	}

	meta, err := r.engine.ResolveRule(ctx, ruleName)
	if err != nil {
		log.Warn().Err(err).Msg("registry: rule not resolved, registry left empty")
		return nil
	}

	userRule, err := r.engine.OpenUserRule(ctx, meta, r.basePath)
	if err != nil {
		log.Warn().Err(err).Msg("registry: user rule not opened, registry left empty")
		return nil
	}

	entries, err := r.collect(ctx, userRule)
	if err != nil {
		if closeErr := userRule.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("registry: closing user rule after failed enumeration")
		}
		log.Warn().Err(err).Msg("registry: keymap enumeration failed, registry left empty")
		return nil
	}

	r.entries = entries
	r.userRule = userRule
	r.ruleName = meta.Name

	log.Info().Int("entries", len(r.entries)).Msg("registry: rule loaded")
	return nil
}

// collect enumerates every bound command of every mode, modes ascending.
func (r *Registry) collect(ctx context.Context, userRule port.UserRule) ([]entity.Binding, error) {
	var entries []entity.Binding
	for _, mode := range entity.AllInputModes() {
		keymap, err := userRule.Keymap(mode)
		if err != nil {
			return nil, fmt.Errorf("keymap %s: %w", mode, err)
		}
		for _, e := range keymap.Entries() {
			if e.Command == "" {
				continue
			}
			entries = append(entries, entity.NewBinding(e.Command, e.Event, r.engine.CommandLabel(e.Command), mode))
		}
		closeKeymap(ctx, keymap, mode)
	}
	return entries, nil
}

// Save persists every mode's live keymap when there are unsaved changes.
//
// Persistence is best effort: a failing mode does not stop the following
// ones, and the dirty flag is cleared whatever the outcome. Failures are
// returned joined, each wrapping entity.ErrPersist.
func (r *Registry) Save(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if !r.dirty || r.userRule == nil {
		r.setDirty(false)
		return nil
	}

	var errs []error
	for _, mode := range entity.AllInputModes() {
		if err := r.userRule.Persist(ctx, mode); err != nil {
			log.Error().Err(err).Str("rule", r.ruleName).Str("mode", mode.String()).Msg("registry: persisting keymap failed")
			errs = append(errs, fmt.Errorf("%w: %s: %w", entity.ErrPersist, mode, err))
		}
	}

	r.setDirty(false)
	log.Info().Str("rule", r.ruleName).Int("failed_modes", len(errs)).Msg("registry: rule saved")
	return errors.Join(errs...)
}

// Add appends binding and commits it to the live keymap of its mode.
// It returns false, leaving everything untouched, when the (mode, key) pair
// is already bound or no rule is loaded.
func (r *Registry) Add(ctx context.Context, binding entity.Binding) bool {
	log := logging.FromContext(ctx)

	if r.userRule == nil || !binding.Mode.Valid() || binding.Command == "" {
		return false
	}

	keymap, err := r.userRule.Keymap(binding.Mode)
	if err != nil {
		log.Warn().Err(err).Str("mode", binding.Mode.String()).Msg("registry: keymap unavailable")
		return false
	}
	defer closeKeymap(ctx, keymap, binding.Mode)

	if existing, bound := keymap.Lookup(binding.Event); bound {
		log.Debug().
			Str("mode", binding.Mode.String()).
			Str("key", binding.KeyString()).
			Str("existing", existing).
			Msg("registry: key conflict")
		return false
	}

	row := len(r.entries)
	r.entries = append(r.entries, binding)
	keymap.Set(binding.Event, binding.Command)
	r.notifyInserted(row)
	r.setDirty(true)

	log.Debug().
		Str("mode", binding.Mode.String()).
		Str("key", binding.KeyString()).
		Str("command", binding.Command).
		Int("row", row).
		Msg("registry: binding added")
	return true
}

// Remove clears the binding at index from its keymap and drops it.
// Out of range indexes and an empty registry are ignored.
func (r *Registry) Remove(ctx context.Context, index int) {
	log := logging.FromContext(ctx)

	if r.userRule == nil || index < 0 || index >= len(r.entries) {
		return
	}

	binding := r.entries[index]
	keymap, err := r.userRule.Keymap(binding.Mode)
	if err != nil {
		log.Warn().Err(err).Str("mode", binding.Mode.String()).Msg("registry: keymap unavailable")
		return
	}
	keymap.Set(binding.Event, "")
	closeKeymap(ctx, keymap, binding.Mode)

	r.entries = slices.Delete(r.entries, index, index+1)
	r.notifyRemoved(index)
	r.setDirty(true)

	log.Debug().
		Str("mode", binding.Mode.String()).
		Str("key", binding.KeyString()).
		Int("row", index).
		Msg("registry: binding removed")
}

// NeedSave reports whether there are unsaved changes.
func (r *Registry) NeedSave() bool {
	return r.dirty
}

// ActiveRule returns the loaded rule name, or "" when nothing is loaded.
func (r *Registry) ActiveRule() string {
	return r.ruleName
}

// Loaded reports whether a user rule is held.
func (r *Registry) Loaded() bool {
	return r.userRule != nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the entry at index.
func (r *Registry) At(index int) (entity.Binding, bool) {
	if index < 0 || index >= len(r.entries) {
		return entity.Binding{}, false
	}
	return r.entries[index], true
}

// Table columns served by Cell.
const (
	ColumnMode = iota
	ColumnKey
	ColumnLabel
	ColumnCount
)

// Cell returns the display text at (row, column), or "" out of range.
func (r *Registry) Cell(row, column int) string {
	b, ok := r.At(row)
	if !ok {
		return ""
	}
	switch column {
	case ColumnMode:
		return b.Mode.DisplayName()
	case ColumnKey:
		return b.KeyString()
	case ColumnLabel:
		return b.Label
	default:
		return ""
	}
}

// Entries returns a copy of the entries in display order.
func (r *Registry) Entries() []entity.Binding {
	return slices.Clone(r.entries)
}

// IndexOf returns the row holding (mode, event), or -1.
func (r *Registry) IndexOf(mode entity.InputMode, event entity.KeyEvent) int {
	probe := entity.Binding{Mode: mode, Event: event}
	return slices.IndexFunc(r.entries, probe.Collides)
}

// Close releases the held user rule. Unsaved changes are dropped.
func (r *Registry) Close(ctx context.Context) {
	r.release(ctx)
	r.entries = nil
	r.ruleName = ""
	r.setDirty(false)
}

func (r *Registry) release(ctx context.Context) {
	if r.userRule == nil {
		return
	}
	if err := r.userRule.Close(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("rule", r.ruleName).Msg("registry: closing user rule")
	}
	r.userRule = nil
}

func closeKeymap(ctx context.Context, keymap port.Keymap, mode entity.InputMode) {
	if err := keymap.Close(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("mode", mode.String()).Msg("registry: closing keymap")
	}
}

func (r *Registry) setDirty(dirty bool) {
	if r.dirty == dirty {
		return
	}
	r.dirty = dirty
	for _, slot := range r.snapshotObservers() {
		slot.observer.DirtyChanged(dirty)
	}
}
