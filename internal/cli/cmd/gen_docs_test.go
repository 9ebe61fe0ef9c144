package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()
	genDocsFormat, genDocsOutputDir = "markdown", dir
	t.Cleanup(func() { genDocsFormat, genDocsOutputDir = "man", "" })

	var out bytes.Buffer
	genDocsCmd.SetOut(&out)
	t.Cleanup(func() { genDocsCmd.SetOut(nil) })

	require.NoError(t, runGenDocs(genDocsCmd, nil))

	assert.FileExists(t, filepath.Join(dir, "kkc-shortcuts.md"))
	assert.FileExists(t, filepath.Join(dir, "kkc-shortcuts_gen-docs.md"))
	assert.Contains(t, out.String(), "  - kkc-shortcuts.md")
}

func TestRunGenDocs_UnknownFormat(t *testing.T) {
	genDocsFormat = "pdf"
	t.Cleanup(func() { genDocsFormat = "man" })

	err := runGenDocs(genDocsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestManHeader_UsesBuildDate(t *testing.T) {
	saved := buildInfo
	t.Cleanup(func() { buildInfo = saved })
	buildInfo.BuildDate = "2024-03-01T10:00:00Z"

	h := manHeader()

	assert.Equal(t, 2024, h.Date.Year())
	assert.Equal(t, "KKC-SHORTCUTS", h.Title)
}
