package kkc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

var errHandleClosed = errors.New("handle closed")

// liveKeymap is the in-memory keymap of one mode: the parent rule's keymap
// plus the user's changes on top of it.
type liveKeymap struct {
	parent *orderedKeymap
	live   *orderedKeymap

	overrideOrder []entity.KeySlot
	overrides     map[entity.KeySlot]port.KeymapEntry
}

func newLiveKeymap(parent *orderedKeymap) *liveKeymap {
	return &liveKeymap{
		parent:    parent,
		live:      parent.clone(),
		overrides: make(map[entity.KeySlot]port.KeymapEntry),
	}
}

func (m *liveKeymap) set(event entity.KeyEvent, command string) {
	m.live.set(event, command)

	slot := event.Slot()
	parentCmd, inParent := m.parent.lookup(event)
	if (inParent && parentCmd == command) || (!inParent && command == "") {
		if _, ok := m.overrides[slot]; ok {
			delete(m.overrides, slot)
			for i, s := range m.overrideOrder {
				if s == slot {
					m.overrideOrder = append(m.overrideOrder[:i], m.overrideOrder[i+1:]...)
					break
				}
			}
		}
		return
	}

	if _, ok := m.overrides[slot]; !ok {
		m.overrideOrder = append(m.overrideOrder, slot)
	}
	m.overrides[slot] = port.KeymapEntry{Command: command, Event: event}
}

func (m *liveKeymap) overrideList() []port.KeymapOverride {
	out := make([]port.KeymapOverride, 0, len(m.overrideOrder))
	for _, slot := range m.overrideOrder {
		entry := m.overrides[slot]
		out = append(out, port.KeymapOverride{Key: entry.Event.String(), Command: entry.Command})
	}
	return out
}

// userRule is a writable rule derived from a parent rule. Changes live in
// memory until Persist hands them to the keymap store.
type userRule struct {
	mu      sync.Mutex
	parent  entity.RuleMetadata
	store   port.KeymapStore
	keymaps [entity.InputModeCount]*liveKeymap
	closed  bool
}

func openUserRule(ctx context.Context, catalog *Catalog, store port.KeymapStore, parent entity.RuleMetadata) (*userRule, error) {
	log := logging.FromContext(ctx)

	if err := store.EnsureRule(ctx, parent); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrRuleOpen, parent.Name, err)
	}

	rule := &userRule{parent: parent, store: store}
	loader := newKeymapLoader(catalog)

	for _, mode := range entity.AllInputModes() {
		parentKeymap, err := loader.loadMode(ctx, parent.BaseDir, mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrRuleOpen, parent.Name, err)
		}
		km := newLiveKeymap(parentKeymap)

		overrides, err := store.LoadOverrides(ctx, parent.Name, mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrRuleOpen, parent.Name, err)
		}
		for _, o := range overrides {
			event, err := ParseKeyEvent(o.Key)
			if err != nil {
				log.Debug().Err(err).Str("mode", mode.String()).Msg("kkc: stored override skipped")
				continue
			}
			km.set(event, o.Command)
		}

		rule.keymaps[mode] = km
	}

	log.Debug().Str("rule", parent.Name).Msg("kkc: user rule opened")
	return rule, nil
}

func (r *userRule) Keymap(mode entity.InputMode) (port.Keymap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, fmt.Errorf("user rule %s: %w", r.parent.Name, errHandleClosed)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid input mode %d", int(mode))
	}
	return &keymapHandle{rule: r, km: r.keymaps[mode]}, nil
}

func (r *userRule) Persist(ctx context.Context, mode entity.InputMode) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return fmt.Errorf("%w: user rule %s: %w", entity.ErrPersist, r.parent.Name, errHandleClosed)
	}
	if !mode.Valid() {
		r.mu.Unlock()
		return fmt.Errorf("%w: invalid input mode %d", entity.ErrPersist, int(mode))
	}
	overrides := r.keymaps[mode].overrideList()
	r.mu.Unlock()

	if err := r.store.SaveOverrides(ctx, r.parent.Name, mode, overrides); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrPersist, err)
	}

	logging.FromContext(ctx).Debug().
		Str("rule", r.parent.Name).
		Str("mode", mode.String()).
		Int("overrides", len(overrides)).
		Msg("kkc: keymap persisted")
	return nil
}

func (r *userRule) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// keymapHandle is a borrowed view of one mode's live keymap. It shares state
// with every other handle of the same rule and mode.
type keymapHandle struct {
	rule   *userRule
	km     *liveKeymap
	closed bool
}

func (h *keymapHandle) usable() bool {
	return !h.closed && !h.rule.closed
}

func (h *keymapHandle) Entries() []port.KeymapEntry {
	h.rule.mu.Lock()
	defer h.rule.mu.Unlock()
	if !h.usable() {
		return nil
	}
	out := make([]port.KeymapEntry, len(h.km.live.entries))
	copy(out, h.km.live.entries)
	return out
}

func (h *keymapHandle) Lookup(event entity.KeyEvent) (string, bool) {
	h.rule.mu.Lock()
	defer h.rule.mu.Unlock()
	if !h.usable() {
		return "", false
	}
	return h.km.live.lookup(event)
}

func (h *keymapHandle) Set(event entity.KeyEvent, command string) {
	h.rule.mu.Lock()
	defer h.rule.mu.Unlock()
	if !h.usable() {
		return
	}
	h.km.set(event, command)
}

func (h *keymapHandle) Close() error {
	h.rule.mu.Lock()
	defer h.rule.mu.Unlock()
	h.closed = true
	return nil
}
