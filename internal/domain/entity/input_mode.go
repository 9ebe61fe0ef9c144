package entity

import (
	"fmt"
	"strings"
)

// InputMode is a conversion state of the engine. Each mode owns an
// independent keymap inside a rule.
type InputMode int

// Input modes in ascending order. The order is significant: loads and saves
// walk the modes from InputModeHiragana to InputModeDirect.
const (
	InputModeHiragana InputMode = iota
	InputModeKatakana
	InputModeHankakuKatakana
	InputModeLatin
	InputModeWideLatin
	InputModeDirect
)

// InputModeCount is the number of input modes.
const InputModeCount = int(InputModeDirect) + 1

var inputModeDisplayNames = [InputModeCount]string{
	"Hiragana",
	"Katakana",
	"Half width Katakana",
	"Latin",
	"Wide latin",
	"Direct input",
}

var inputModeFileNames = [InputModeCount]string{
	"hiragana",
	"katakana",
	"hankaku-katakana",
	"latin",
	"wide-latin",
	"direct",
}

// AllInputModes returns every input mode in ascending order.
func AllInputModes() []InputMode {
	modes := make([]InputMode, InputModeCount)
	for i := range modes {
		modes[i] = InputMode(i)
	}
	return modes
}

// Valid reports whether m is one of the known modes.
func (m InputMode) Valid() bool {
	return m >= InputModeHiragana && m <= InputModeDirect
}

// DisplayName returns the human-readable mode name shown in tables.
func (m InputMode) DisplayName() string {
	if !m.Valid() {
		return ""
	}
	return inputModeDisplayNames[m]
}

// FileName returns the keymap file stem used by rule directories.
func (m InputMode) FileName() string {
	if !m.Valid() {
		return ""
	}
	return inputModeFileNames[m]
}

func (m InputMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("InputMode(%d)", int(m))
	}
	return inputModeFileNames[m]
}

// ParseInputMode accepts a keymap file stem ("hankaku-katakana"), a display
// name ("Half width Katakana") or the numeric index.
func ParseInputMode(s string) (InputMode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	needle = strings.ReplaceAll(needle, "_", "-")
	for i := 0; i < InputModeCount; i++ {
		if needle == inputModeFileNames[i] || needle == strings.ToLower(inputModeDisplayNames[i]) {
			return InputMode(i), nil
		}
	}
	if len(needle) == 1 && needle[0] >= '0' && int(needle[0]-'0') < InputModeCount {
		return InputMode(needle[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown input mode %q", s)
}
