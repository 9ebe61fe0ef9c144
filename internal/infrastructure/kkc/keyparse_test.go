package kkc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

func TestParseKeyEvent(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		keyval    uint32
		modifiers entity.Modifier
		canonical string
	}{
		{name: "letter", input: "a", keyval: 0x61, canonical: "a"},
		{name: "upper letter", input: "A", keyval: 0x41, canonical: "A"},
		{name: "named key", input: "Escape", keyval: 0xff1b, canonical: "Escape"},
		{name: "named key any case", input: "escape", keyval: 0xff1b, canonical: "Escape"},
		{name: "alias", input: "Esc", keyval: 0xff1b, canonical: "Escape"},
		{name: "punctuation char", input: "/", keyval: 0x2f, canonical: "slash"},
		{name: "punctuation name", input: "slash", keyval: 0x2f, canonical: "slash"},
		{name: "japanese key", input: "Zenkaku_Hankaku", keyval: 0xff2a, canonical: "Zenkaku_Hankaku"},
		{
			name: "lisp single modifier", input: "(control g)",
			keyval: 0x67, modifiers: entity.ModControl, canonical: "(control g)",
		},
		{
			name: "lisp modifiers are reordered", input: "(shift control a)",
			keyval: 0x61, modifiers: entity.ModControl | entity.ModShift, canonical: "(control shift a)",
		},
		{
			name: "emacs style", input: "C-g",
			keyval: 0x67, modifiers: entity.ModControl, canonical: "(control g)",
		},
		{
			name: "emacs stacked", input: "C-M-x",
			keyval: 0x78, modifiers: entity.ModControl | entity.ModMeta, canonical: "(control meta x)",
		},
		{
			name: "emacs minus key", input: "C--",
			keyval: 0x2d, modifiers: entity.ModControl, canonical: "(control minus)",
		},
		{
			name: "plus style", input: "Ctrl+Shift+a",
			keyval: 0x61, modifiers: entity.ModControl | entity.ModShift, canonical: "(control shift a)",
		},
		{
			name: "plus style alt", input: "alt+F4",
			keyval: 0xffc1, modifiers: entity.ModMod1, canonical: "(mod1 F4)",
		},
		{
			name: "plus key", input: "ctrl++",
			keyval: 0x2b, modifiers: entity.ModControl, canonical: "(control plus)",
		},
		{
			name: "emacs plus key", input: "C-+",
			keyval: 0x2b, modifiers: entity.ModControl, canonical: "(control plus)",
		},
		{name: "bare plus", input: "+", keyval: 0x2b, canonical: "plus"},
		{name: "surrounding space", input: "  space ", keyval: 0x20, canonical: "space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParseKeyEvent(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.keyval, event.Keyval())
			assert.Equal(t, tt.modifiers, event.Modifiers())
			assert.Equal(t, tt.canonical, event.String())
		})
	}
}

func TestParseKeyEvent_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"(control g",
		"()",
		"(bogus g)",
		"NotAKey",
		"ctrl+",
		"hyperdrive+a",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseKeyEvent(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrParse)
		})
	}
}

func TestParseKeyEvent_CanonicalRoundTrip(t *testing.T) {
	for _, input := range []string{"(control g)", "(control shift a)", "Escape", "(mod1 F4)", "(control minus)"} {
		event, err := ParseKeyEvent(input)
		require.NoError(t, err)

		again, err := ParseKeyEvent(event.String())
		require.NoError(t, err)
		assert.True(t, event.Equal(again), input)
	}
}
