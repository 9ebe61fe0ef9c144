package styles

// RuleBadge renders the active rule name.
func (t *Theme) RuleBadge(name string) string {
	return t.Badge.Render(IconRule + " " + name)
}

// DirtyBadge renders the unsaved-changes marker, or nothing when clean.
func (t *Theme) DirtyBadge(dirty bool) string {
	if !dirty {
		return ""
	}
	return t.WarningStyle.Render(IconModified + " modified")
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}
