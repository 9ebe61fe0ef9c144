// Package validation holds value checks shared by configuration adapters.
package validation

import (
	"regexp"
	"sort"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color of a palette and returns one
// message per invalid entry, ordered by field name.
func ValidatePaletteHex(prefix string, colors map[string]string) []string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []string
	for _, name := range names {
		if !IsHexColor(colors[name]) {
			errs = append(errs, prefix+"."+name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
