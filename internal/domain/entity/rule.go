package entity

// DefaultRuleName is used when no active rule has been stored yet.
const DefaultRuleName = "default"

// RuleMetadata describes a conversion rule found in a rule directory.
type RuleMetadata struct {
	Name        string // Directory name, the rule identifier
	Label       string // Human-readable name from metadata.json
	Description string
	Filter      string
	Priority    int
	BaseDir     string // Directory holding metadata.json and keymap/
}

// DisplayName returns the label, falling back to the identifier.
func (r RuleMetadata) DisplayName() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Name
}
