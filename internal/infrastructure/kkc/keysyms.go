package kkc

import (
	"fmt"
	"strings"
)

// X keysym codes for the keys libkkc keymaps refer to. Latin-1 printable
// keysyms equal their character code and are generated in init.
var namedKeysyms = map[string]uint32{
	"BackSpace":         0xff08,
	"Tab":               0xff09,
	"Linefeed":          0xff0a,
	"Return":            0xff0d,
	"Pause":             0xff13,
	"Escape":            0xff1b,
	"Kanji":             0xff21,
	"Muhenkan":          0xff22,
	"Henkan_Mode":       0xff23,
	"Romaji":            0xff24,
	"Hiragana":          0xff25,
	"Katakana":          0xff26,
	"Hiragana_Katakana": 0xff27,
	"Zenkaku":           0xff28,
	"Hankaku":           0xff29,
	"Zenkaku_Hankaku":   0xff2a,
	"Eisu_Shift":        0xff2f,
	"Eisu_toggle":       0xff30,
	"Home":              0xff50,
	"Left":              0xff51,
	"Up":                0xff52,
	"Right":             0xff53,
	"Down":              0xff54,
	"Page_Up":           0xff55,
	"Page_Down":         0xff56,
	"End":               0xff57,
	"Insert":            0xff63,
	"Menu":              0xff67,
	"KP_Enter":          0xff8d,
	"KP_Space":          0xff80,
	"F1":                0xffbe,
	"F2":                0xffbf,
	"F3":                0xffc0,
	"F4":                0xffc1,
	"F5":                0xffc2,
	"F6":                0xffc3,
	"F7":                0xffc4,
	"F8":                0xffc5,
	"F9":                0xffc6,
	"F10":               0xffc7,
	"F11":               0xffc8,
	"F12":               0xffc9,
	"Shift_L":           0xffe1,
	"Shift_R":           0xffe2,
	"Control_L":         0xffe3,
	"Control_R":         0xffe4,
	"Alt_L":             0xffe9,
	"Alt_R":             0xffea,
	"Super_L":           0xffeb,
	"Super_R":           0xffec,
	"Delete":            0xffff,
}

var punctuationKeysyms = map[rune]string{
	' ':  "space",
	'!':  "exclam",
	'"':  "quotedbl",
	'#':  "numbersign",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "apostrophe",
	'(':  "parenleft",
	')':  "parenright",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "minus",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equal",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "bracketleft",
	'\\': "backslash",
	']':  "bracketright",
	'^':  "asciicircum",
	'_':  "underscore",
	'`':  "grave",
	'{':  "braceleft",
	'|':  "bar",
	'}':  "braceright",
	'~':  "asciitilde",
}

// keysymAliases maps lower-cased spellings people type to canonical names.
var keysymAliases = map[string]string{
	"esc":       "Escape",
	"enter":     "Return",
	"ret":       "Return",
	"cr":        "Return",
	"bs":        "BackSpace",
	"del":       "Delete",
	"ins":       "Insert",
	"pgup":      "Page_Up",
	"pageup":    "Page_Up",
	"pgdn":      "Page_Down",
	"pagedown":  "Page_Down",
	"henkan":    "Henkan_Mode",
	"eisu":      "Eisu_toggle",
	"kp_return": "KP_Enter",
}

var (
	keysymByName  = map[string]uint32{}
	keysymByLower = map[string]string{}
)

func init() {
	register := func(name string, code uint32) {
		keysymByName[name] = code
		lower := strings.ToLower(name)
		if _, ok := keysymByLower[lower]; !ok {
			keysymByLower[lower] = name
		}
	}

	for name, code := range namedKeysyms {
		register(name, code)
	}
	for r, name := range punctuationKeysyms {
		register(name, uint32(r))
	}
	for r := '0'; r <= '9'; r++ {
		register(string(r), uint32(r))
	}
	for r := 'a'; r <= 'z'; r++ {
		register(string(r), uint32(r))
	}
	for r := 'A'; r <= 'Z'; r++ {
		register(string(r), uint32(r))
	}
}

// lookupKeysym resolves a keysym name. Exact names win; otherwise a
// case-insensitive match or alias is tried for names longer than one rune.
func lookupKeysym(name string) (string, uint32, error) {
	if code, ok := keysymByName[name]; ok {
		return name, code, nil
	}
	if len([]rune(name)) == 1 {
		r := []rune(name)[0]
		if canonical, ok := punctuationKeysyms[r]; ok {
			return canonical, uint32(r), nil
		}
		return "", 0, fmt.Errorf("unknown keysym %q", name)
	}

	lower := strings.ToLower(name)
	if canonical, ok := keysymAliases[lower]; ok {
		return canonical, keysymByName[canonical], nil
	}
	if canonical, ok := keysymByLower[lower]; ok {
		return canonical, keysymByName[canonical], nil
	}
	return "", 0, fmt.Errorf("unknown keysym %q", name)
}
