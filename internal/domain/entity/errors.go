package entity

import "errors"

// Shortcut management errors.
var (
	// ErrRuleNotFound is returned when a rule name does not resolve in the catalog.
	ErrRuleNotFound = errors.New("rule not found")
	// ErrRuleOpen is returned when a user rule instance cannot be created or opened.
	ErrRuleOpen = errors.New("cannot open user rule")
	// ErrKeyConflict is returned when a (mode, key) pair is already bound.
	ErrKeyConflict = errors.New("key to add is conflict with existing shortcut")
	// ErrParse is returned for unrecognized key descriptions.
	ErrParse = errors.New("invalid key description")
	// ErrPersist is returned when a mode's keymap cannot be written to storage.
	ErrPersist = errors.New("cannot persist keymap")
	// ErrBindingNotFound is returned when no entry matches a (mode, key) pair.
	ErrBindingNotFound = errors.New("shortcut not found")
	// ErrNoRuleLoaded is returned by edits attempted before a rule is loaded.
	ErrNoRuleLoaded = errors.New("no rule loaded")
	// ErrUnknownCommand is returned when a binding names a command the engine does not know.
	ErrUnknownCommand = errors.New("unknown command")
)
