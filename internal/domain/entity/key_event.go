package entity

import "strings"

// Modifier is a bit mask of modifier keys held during a key chord.
type Modifier uint32

// Modifier bits follow the libkkc/GDK modifier layout.
const (
	ModNone    Modifier = 0
	ModShift   Modifier = 1 << 0
	ModControl Modifier = 1 << 2
	ModMod1    Modifier = 1 << 3
	ModLShift  Modifier = 1 << 22
	ModRShift  Modifier = 1 << 23
	ModSuper   Modifier = 1 << 26
	ModHyper   Modifier = 1 << 27
	ModMeta    Modifier = 1 << 28
	ModRelease Modifier = 1 << 30
)

// modifierOrder fixes the order modifiers appear in canonical key strings.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModControl, "control"},
	{ModMeta, "meta"},
	{ModHyper, "hyper"},
	{ModSuper, "super"},
	{ModMod1, "mod1"},
	{ModShift, "shift"},
	{ModLShift, "lshift"},
	{ModRShift, "rshift"},
	{ModRelease, "release"},
}

// ModifierFromName maps a libkkc modifier name to its bit. Unknown names
// return ModNone.
func ModifierFromName(name string) Modifier {
	for _, m := range modifierOrder {
		if m.name == name {
			return m.mod
		}
	}
	return ModNone
}

// Names returns the modifier names set in m, in canonical order.
func (m Modifier) Names() []string {
	var names []string
	for _, entry := range modifierOrder {
		if m&entry.mod != 0 {
			names = append(names, entry.name)
		}
	}
	return names
}

// Has reports whether every bit of other is set in m.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// KeyEvent identifies a physical key chord. Values are produced by the
// conversion engine's key parser; two events are equal when they would hit
// the same keymap slot.
type KeyEvent struct {
	keyval    uint32
	name      string
	modifiers Modifier
}

// NewKeyEvent builds a key event from an already resolved keysym. name must
// be the canonical keysym name for keyval.
func NewKeyEvent(keyval uint32, name string, modifiers Modifier) KeyEvent {
	return KeyEvent{keyval: keyval, name: name, modifiers: modifiers}
}

// Keyval returns the X keysym code of the event.
func (e KeyEvent) Keyval() uint32 { return e.keyval }

// KeyName returns the canonical keysym name.
func (e KeyEvent) KeyName() string { return e.name }

// Modifiers returns the modifier mask.
func (e KeyEvent) Modifiers() Modifier { return e.modifiers }

// IsZero reports whether e is the zero value.
func (e KeyEvent) IsZero() bool {
	return e.keyval == 0 && e.modifiers == ModNone
}

// Equal compares events structurally on keyval and modifiers.
func (e KeyEvent) Equal(other KeyEvent) bool {
	return e.keyval == other.keyval && e.modifiers == other.modifiers
}

// Slot returns a comparable key usable in maps.
func (e KeyEvent) Slot() KeySlot {
	return KeySlot{Keyval: e.keyval, Modifiers: e.modifiers}
}

// String returns the canonical libkkc form: the bare keysym name, or
// "(control shift a)" when modifiers are held.
func (e KeyEvent) String() string {
	if e.modifiers == ModNone {
		return e.name
	}
	parts := append(e.modifiers.Names(), e.name)
	return "(" + strings.Join(parts, " ") + ")"
}

// KeySlot is the comparable identity of a KeyEvent.
type KeySlot struct {
	Keyval    uint32
	Modifiers Modifier
}
