package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconHeart     = "\uf004" //  heart
	IconGo        = "\ue627" //  go gopher

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning

	// Filesystem
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconLogs     = "\uf0f6" // file-text

	// Shortcuts
	IconKeyboard = "\uf11c" // keyboard
	IconRule     = "\uf02d" // book
	IconModified = "\uf040" // pencil
	IconSave     = "\uf0c7" // floppy

	// UI
	IconCursor = "\uf054" // chevron-right
	IconActive = "●"
)
