package entity

// Binding is one keymap entry as shown to the user: a command bound to a key
// event in one input mode.
type Binding struct {
	Command string
	Event   KeyEvent
	Label   string
	Mode    InputMode
}

// NewBinding creates a binding value.
func NewBinding(command string, event KeyEvent, label string, mode InputMode) Binding {
	return Binding{
		Command: command,
		Event:   event,
		Label:   label,
		Mode:    mode,
	}
}

// KeyString returns the display string of the bound key.
func (b Binding) KeyString() string {
	return b.Event.String()
}

// Collides reports whether b and other occupy the same (mode, event) slot.
func (b Binding) Collides(other Binding) bool {
	return b.Mode == other.Mode && b.Event.Equal(other.Event)
}
