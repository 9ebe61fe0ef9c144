package kkc

import (
	"fmt"
	"strings"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

// emacsModifiers are the single-letter prefixes of "C-x" style descriptions.
var emacsModifiers = map[byte]entity.Modifier{
	'C': entity.ModControl,
	'M': entity.ModMeta,
	'A': entity.ModMod1,
	'S': entity.ModShift,
	's': entity.ModSuper,
	'H': entity.ModHyper,
}

// modifierAliases extends the libkkc modifier names with common spellings.
var modifierAliases = map[string]entity.Modifier{
	"ctrl":  entity.ModControl,
	"alt":   entity.ModMod1,
	"win":   entity.ModSuper,
	"cmd":   entity.ModSuper,
	"shift": entity.ModShift,
}

// ParseKeyEvent parses a key description.
//
// Supported formats:
//   - libkkc canonical: "a", "Escape", "(control g)", "(control shift a)"
//   - Emacs style: "C-g", "M-x", "C-S-a"
//   - Plus style: "Ctrl+g", "ctrl+shift+a", "Alt+F4"
func ParseKeyEvent(raw string) (entity.KeyEvent, error) {
	spec := strings.TrimSpace(raw)
	if spec == "" {
		return entity.KeyEvent{}, fmt.Errorf("%w: empty description", entity.ErrParse)
	}

	if strings.HasPrefix(spec, "(") {
		return parseLispStyle(spec)
	}

	if mods, rest := splitEmacsPrefix(spec); mods != entity.ModNone {
		return keyEventFromName(rest, mods, raw)
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parsePlusStyle(spec)
	}

	return keyEventFromName(spec, entity.ModNone, raw)
}

// parseLispStyle parses "(mod1 mod2 key)".
func parseLispStyle(spec string) (entity.KeyEvent, error) {
	if !strings.HasSuffix(spec, ")") {
		return entity.KeyEvent{}, fmt.Errorf("%w: unmatched parenthesis in %q", entity.ErrParse, spec)
	}

	fields := strings.Fields(spec[1 : len(spec)-1])
	if len(fields) == 0 {
		return entity.KeyEvent{}, fmt.Errorf("%w: %q", entity.ErrParse, spec)
	}

	var mods entity.Modifier
	for _, name := range fields[:len(fields)-1] {
		mod, err := modifierFromName(name)
		if err != nil {
			return entity.KeyEvent{}, fmt.Errorf("%w in %q", err, spec)
		}
		mods |= mod
	}

	return keyEventFromName(fields[len(fields)-1], mods, spec)
}

// parsePlusStyle parses "Ctrl+Shift+a". A trailing "++" binds the plus key.
func parsePlusStyle(spec string) (entity.KeyEvent, error) {
	keyPart := ""
	prefix := spec
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		prefix = strings.TrimSuffix(spec, "++")
	} else {
		idx := strings.LastIndex(spec, "+")
		keyPart = spec[idx+1:]
		prefix = spec[:idx]
	}

	var mods entity.Modifier
	for _, name := range strings.Split(prefix, "+") {
		mod, err := modifierFromName(name)
		if err != nil {
			return entity.KeyEvent{}, fmt.Errorf("%w in %q", err, spec)
		}
		mods |= mod
	}

	return keyEventFromName(strings.TrimSpace(keyPart), mods, spec)
}

// splitEmacsPrefix consumes leading "X-" modifier prefixes.
func splitEmacsPrefix(spec string) (entity.Modifier, string) {
	var mods entity.Modifier
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		mod, ok := emacsModifiers[rest[0]]
		if !ok {
			break
		}
		mods |= mod
		rest = rest[2:]
	}
	return mods, rest
}

func modifierFromName(name string) (entity.Modifier, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if mod := entity.ModifierFromName(lower); mod != entity.ModNone {
		return mod, nil
	}
	if mod, ok := modifierAliases[lower]; ok {
		return mod, nil
	}
	return entity.ModNone, fmt.Errorf("%w: unknown modifier %q", entity.ErrParse, name)
}

func keyEventFromName(name string, mods entity.Modifier, spec string) (entity.KeyEvent, error) {
	if name == "" {
		return entity.KeyEvent{}, fmt.Errorf("%w: missing key in %q", entity.ErrParse, spec)
	}
	canonical, code, err := lookupKeysym(name)
	if err != nil {
		return entity.KeyEvent{}, fmt.Errorf("%w: %w", entity.ErrParse, err)
	}
	return entity.NewKeyEvent(code, canonical, mods), nil
}
