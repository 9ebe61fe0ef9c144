package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kkc-shortcuts/internal/application/shortcut"
	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/activerule"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/kkc"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

type testEditor struct {
	model    ShortcutsModel
	registry *shortcut.Registry
	store    *activerule.FileStore
}

func writeRuleFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newTestEditor opens "default" (two hiragana bindings, one latin) next to
// an empty "act" rule.
func newTestEditor(t *testing.T) *testEditor {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))

	root := t.TempDir()
	writeRuleFile(t, filepath.Join(root, "default", "metadata.json"), `{"name": "Default"}`)
	writeRuleFile(t, filepath.Join(root, "default", "keymap", "hiragana.json"),
		`{"define": {"keymap": {"C-g": "abort", "space": "next-candidate"}}}`)
	writeRuleFile(t, filepath.Join(root, "default", "keymap", "latin.json"),
		`{"define": {"keymap": {"C-j": "set-input-mode-hiragana"}}}`)
	writeRuleFile(t, filepath.Join(root, "act", "metadata.json"), `{"name": "ACT"}`)

	catalog := kkc.NewCatalog([]string{root})
	engine := kkc.NewEngine(catalog)
	registry := shortcut.NewRegistry(engine, t.TempDir())
	require.NoError(t, registry.Load(ctx, "default"))

	store := activerule.NewFileStore(filepath.Join(t.TempDir(), "rule"))
	activeUC := usecase.NewActiveRuleUseCase(store, catalog)

	m := NewShortcutsModel(ctx, styles.NewTheme(config.DefaultConfig()), ShortcutsModelConfig{
		Registry:         registry,
		Engine:           engine,
		ListRulesUC:      usecase.NewListRulesUseCase(catalog),
		AddShortcutUC:    usecase.NewAddShortcutUseCase(engine, registry),
		RemoveShortcutUC: usecase.NewRemoveShortcutUseCase(engine, registry),
		SwitchRuleUC:     usecase.NewSwitchRuleUseCase(registry),
		SaveShortcutsUC:  usecase.NewSaveShortcutsUseCase(registry, activeUC),
	})
	t.Cleanup(m.Close)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(ShortcutsModel)
	updated, _ = m.Update(m.Init()())
	m = updated.(ShortcutsModel)

	return &testEditor{model: m, registry: registry, store: store}
}

func (e *testEditor) press(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	updated, cmd := e.model.Update(msg)
	e.model = updated.(ShortcutsModel)
	return cmd
}

func (e *testEditor) typeText(t *testing.T, text string) {
	t.Helper()
	for _, r := range text {
		e.press(t, runes(string(r)))
	}
}

// deliver runs a command whose message must reach the model, such as the
// add dialog submit.
func (e *testEditor) deliver(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	updated, _ := e.model.Update(cmd())
	e.model = updated.(ShortcutsModel)
}

func (e *testEditor) chooseRule(t *testing.T, name string) {
	t.Helper()
	e.press(t, runes("r"))
	require.Equal(t, viewRules, e.model.view)
	e.model.ruleCursor = usecase.FindRule(e.model.rules, name)
	require.Equal(t, name, e.model.rules[e.model.ruleCursor].Name)
	e.press(t, tea.KeyMsg{Type: tea.KeyEnter})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestShortcutsModel_ShowsRegistryRows(t *testing.T) {
	e := newTestEditor(t)

	rows := e.model.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Hiragana", rows[0][0])
	assert.Equal(t, "Abort", rows[0][2])
	assert.Equal(t, "Latin", rows[2][0])

	view := e.model.View()
	assert.Contains(t, view, "default")
	assert.Contains(t, view, "3 bound")
	assert.NotContains(t, view, "modified")
	assert.Len(t, e.model.rules, 2)
}

func TestShortcutsModel_AddShortcut(t *testing.T) {
	e := newTestEditor(t)

	e.press(t, runes("a"))
	require.Equal(t, viewAdd, e.model.view)

	e.typeText(t, "Escape")
	e.press(t, tea.KeyMsg{Type: tea.KeyTab})
	e.typeText(t, "abort")
	require.Equal(t, "abort", e.model.add.selectedCommand())

	e.deliver(t, e.press(t, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, viewTable, e.model.view)
	require.Len(t, e.model.table.Rows(), 4)
	assert.True(t, e.registry.NeedSave())
	assert.True(t, e.model.sync.dirty)

	inserted := e.model.table.Rows()[e.model.table.Cursor()]
	assert.Equal(t, []string{"Hiragana", "Escape", "Abort"}, []string(inserted))
	assert.Contains(t, e.model.View(), "modified")
}

func TestShortcutsModel_AddConflictKeepsDialogOpen(t *testing.T) {
	e := newTestEditor(t)

	e.press(t, runes("a"))
	e.typeText(t, "C-g")
	e.press(t, tea.KeyMsg{Type: tea.KeyTab})
	e.typeText(t, "commit")
	e.deliver(t, e.press(t, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, viewAdd, e.model.view)
	require.Error(t, e.model.add.err)
	assert.Contains(t, e.model.add.err.Error(), "already bound")
	assert.Len(t, e.model.table.Rows(), 3)
	assert.False(t, e.registry.NeedSave())

	e.deliver(t, e.press(t, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, viewTable, e.model.view)
}

func TestShortcutsModel_RemoveSelected(t *testing.T) {
	e := newTestEditor(t)

	e.press(t, runes("d"))

	rows := e.model.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Next Candidate", rows[0][2])
	assert.Equal(t, 0, e.model.table.Cursor())
	assert.True(t, e.registry.NeedSave())
}

func TestShortcutsModel_SwitchRulePrompt(t *testing.T) {
	e := newTestEditor(t)
	e.press(t, runes("d"))

	e.chooseRule(t, "act")
	require.NotNil(t, e.model.prompt)

	// Cancel keeps the edited rule.
	e.press(t, runes("c"))
	assert.Nil(t, e.model.prompt)
	assert.Equal(t, "default", e.registry.ActiveRule())
	assert.True(t, e.registry.NeedSave())
	assert.Len(t, e.model.table.Rows(), 2)

	// Discard switches and drops the edit.
	e.chooseRule(t, "act")
	e.press(t, runes("d"))
	assert.Equal(t, "act", e.registry.ActiveRule())
	assert.False(t, e.registry.NeedSave())
	assert.Empty(t, e.model.table.Rows())
	assert.Contains(t, e.model.View(), "No shortcuts yet")

	// Nothing was saved, so default still has its three bindings.
	e.chooseRule(t, "default")
	assert.Nil(t, e.model.prompt)
	assert.Len(t, e.model.table.Rows(), 3)
}

func TestShortcutsModel_QuitWithUnsavedChangesSaves(t *testing.T) {
	e := newTestEditor(t)
	e.press(t, runes("d"))

	cmd := e.press(t, runes("q"))
	assert.Nil(t, cmd)
	require.NotNil(t, e.model.prompt)

	cmd = e.press(t, runes("s"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, e.registry.NeedSave())

	name, err := e.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default", name)
}

func TestShortcutsModel_RevertReloadsRule(t *testing.T) {
	e := newTestEditor(t)
	e.press(t, runes("d"))
	require.Len(t, e.model.table.Rows(), 2)

	e.press(t, runes("u"))

	assert.Len(t, e.model.table.Rows(), 3)
	assert.False(t, e.registry.NeedSave())
	assert.False(t, e.model.sync.dirty)
}

func TestShortcutsModel_ThemeChange(t *testing.T) {
	e := newTestEditor(t)
	palette := config.DefaultPalette()
	palette.Accent = "#ff00ff"

	updated, _ := e.model.Update(ThemeChangedMsg{Theme: styles.NewThemeFromPalette(palette)})
	e.model = updated.(ShortcutsModel)

	assert.Equal(t, "#ff00ff", string(e.model.theme.Accent))
	assert.Len(t, e.model.table.Rows(), 3)
}
