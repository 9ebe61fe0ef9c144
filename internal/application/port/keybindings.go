package port

import (
	"context"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

// KeymapEntry is one slot of an engine keymap. An empty Command means the
// slot exists but nothing is bound to it.
type KeymapEntry struct {
	Command string
	Event   entity.KeyEvent
}

// RuleCatalog enumerates and resolves conversion rules.
type RuleCatalog interface {
	// ListRules returns every rule found on the search path, in display order.
	ListRules(ctx context.Context) ([]entity.RuleMetadata, error)
	// ResolveRule returns the metadata for name or entity.ErrRuleNotFound.
	ResolveRule(ctx context.Context, name string) (entity.RuleMetadata, error)
}

// ConversionEngine is the narrow surface the shortcut registry needs from the
// kana-kanji conversion engine.
type ConversionEngine interface {
	RuleCatalog

	// OpenUserRule opens, creating it when needed, a user-writable rule
	// derived from rule and stored under basePath.
	OpenUserRule(ctx context.Context, rule entity.RuleMetadata, basePath string) (UserRule, error)

	// ParseKeyDescription parses a raw key description into a key event.
	// Unrecognized input yields an error wrapping entity.ErrParse.
	ParseKeyDescription(raw string) (entity.KeyEvent, error)

	// CommandLabel returns the human-readable label of a command.
	CommandLabel(command string) string

	// Commands returns every command name the engine accepts, sorted.
	Commands() []string
}

// UserRule is an owned handle on a user-writable rule instance. Close
// releases it and drops any unpersisted keymap changes.
type UserRule interface {
	Keymap(mode entity.InputMode) (Keymap, error)
	Persist(ctx context.Context, mode entity.InputMode) error
	Close() error
}

// Keymap is an owned handle on the live keymap of one mode. Mutations are
// visible to every other handle of the same user rule and mode.
type Keymap interface {
	// Entries enumerates the keymap in engine order.
	Entries() []KeymapEntry
	// Lookup returns the command bound to event, if any.
	Lookup(event entity.KeyEvent) (string, bool)
	// Set binds event to command. An empty command clears the binding.
	Set(event entity.KeyEvent, command string)
	Close() error
}

// KeymapOverride is one user change on top of a parent rule's keymap.
// An empty Command records a cleared binding.
type KeymapOverride struct {
	Key     string
	Command string
}

// KeymapStore persists the user overrides of a rule, one mode at a time.
// Rules are identified by the parent rule name.
type KeymapStore interface {
	// EnsureRule prepares storage for the user rule derived from rule.
	EnsureRule(ctx context.Context, rule entity.RuleMetadata) error
	LoadOverrides(ctx context.Context, rule string, mode entity.InputMode) ([]KeymapOverride, error)
	SaveOverrides(ctx context.Context, rule string, mode entity.InputMode, overrides []KeymapOverride) error
}

// ActiveRuleStore reads and writes the name of the rule the user picked.
type ActiveRuleStore interface {
	// Load returns the stored name, or "" when nothing is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, name string) error
}
