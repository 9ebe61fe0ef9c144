package kkc

import (
	"slices"
)

var commandLabels = map[string]string{
	"abort":                           "Abort",
	"first-segment":                   "First Segment",
	"last-segment":                    "Last Segment",
	"commit":                          "Commit",
	"complete":                        "Complete",
	"delete":                          "Delete",
	"quote":                           "Quote",
	"register":                        "Register Word",
	"next-candidate":                  "Next Candidate",
	"previous-candidate":              "Previous Candidate",
	"purge-candidate":                 "Purge Candidate",
	"next-segment":                    "Next Segment",
	"previous-segment":                "Previous Segment",
	"expand-segment":                  "Expand Segment",
	"shrink-segment":                  "Shrink Segment",
	"set-input-mode-hiragana":         "Switch to Hiragana Input Mode",
	"set-input-mode-katakana":         "Switch to Katakana Input Mode",
	"set-input-mode-hankaku-katakana": "Switch to Hankaku Katakana Input Mode",
	"set-input-mode-latin":            "Switch to Latin Input Mode",
	"set-input-mode-wide-latin":       "Switch to Wide Latin Input Mode",
	"set-input-mode-direct":           "Switch to Direct Input Mode",
	"convert-hiragana":                "Convert to Hiragana",
	"convert-katakana":                "Convert to Katakana",
	"convert-hankaku-katakana":        "Convert to Hankaku Katakana",
	"convert-latin":                   "Convert to Latin",
	"convert-wide-latin":              "Convert to Wide Latin",
	"original-candidate":              "Original Candidate",
}

// CommandLabel returns the display label of command. Unknown commands are
// shown as-is.
func CommandLabel(command string) string {
	if label, ok := commandLabels[command]; ok {
		return label
	}
	return command
}

// Commands returns every known command, sorted.
func Commands() []string {
	out := make([]string, 0, len(commandLabels))
	for name := range commandLabels {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// IsCommand reports whether command is known to the engine.
func IsCommand(command string) bool {
	_, ok := commandLabels[command]
	return ok
}
