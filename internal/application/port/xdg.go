package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)

	// RuleSearchDirs returns the system libkkc rule roots, most specific first.
	RuleSearchDirs() ([]string, error)
	// UserRuleDir returns the base path user rules are written under.
	UserRuleDir() (string, error)
	// ActiveRuleFile returns the path of the file holding the active rule name.
	ActiveRuleFile() (string, error)
	// ManDir returns the user man page directory for section 1.
	ManDir() (string, error)
}
