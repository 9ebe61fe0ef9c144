// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/application/shortcut"
	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// Rows taken by everything but the table.
const chromeHeight = 8

type editorView int

const (
	viewTable editorView = iota
	viewRules
	viewAdd
)

// pendingAction is what a save/discard/cancel answer applies to.
type pendingAction int

const (
	pendingSwitch pendingAction = iota
	pendingQuit
)

// Prompt choice indexes, in button order.
const (
	choiceSave = iota
	choiceDiscard
	choiceCancel
)

// tableSync receives registry notifications. It lives behind a pointer so
// the value-typed model and the observer registered on the registry share it.
type tableSync struct {
	stale     bool
	resetting bool
	inserted  int
	removed   int
	dirty     bool
}

func newTableSync(dirty bool) *tableSync {
	return &tableSync{stale: true, inserted: -1, removed: -1, dirty: dirty}
}

func (s *tableSync) RegistryReset(begin bool) {
	s.resetting = begin
	s.stale = true
	s.inserted, s.removed = -1, -1
}

func (s *tableSync) RowInserted(row int) {
	s.stale = true
	s.inserted = row
}

func (s *tableSync) RowRemoved(row int) {
	s.stale = true
	s.removed = row
}

func (s *tableSync) DirtyChanged(dirty bool) {
	s.dirty = dirty
}

// ShortcutsModelConfig holds the dependencies of the shortcut editor.
type ShortcutsModelConfig struct {
	Registry         *shortcut.Registry
	Engine           port.ConversionEngine
	ListRulesUC      *usecase.ListRulesUseCase
	AddShortcutUC    *usecase.AddShortcutUseCase
	RemoveShortcutUC *usecase.RemoveShortcutUseCase
	SwitchRuleUC     *usecase.SwitchRuleUseCase
	SaveShortcutsUC  *usecase.SaveShortcutsUseCase
}

// ShortcutsModel is the Bubble Tea model of the shortcut editor.
type ShortcutsModel struct {
	// UI components
	help   help.Model
	keys   styles.EditorKeyMap
	dkeys  styles.DialogKeyMap
	table  table.Model
	add    addDialog
	prompt *styles.PromptModel

	// State
	view        editorView
	pending     pendingAction
	pendingRule string
	rules       []entity.RuleMetadata
	ruleCursor  int
	sync        *tableSync
	unsubscribe func()
	width       int
	height      int
	err         error
	status      string
	quitting    bool

	// Dependencies
	ctx      context.Context
	registry *shortcut.Registry
	engine   port.ConversionEngine
	listUC   *usecase.ListRulesUseCase
	addUC    *usecase.AddShortcutUseCase
	removeUC *usecase.RemoveShortcutUseCase
	switchUC *usecase.SwitchRuleUseCase
	saveUC   *usecase.SaveShortcutsUseCase
	theme    *styles.Theme
}

// ThemeChangedMsg swaps the theme after the config file changed.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

// rulesLoadedMsg is sent when the rule list is scanned.
type rulesLoadedMsg struct {
	rules []entity.RuleMetadata
	err   error
}

// NewShortcutsModel creates the editor over an already loaded registry.
// The model observes the registry until Close is called.
func NewShortcutsModel(ctx context.Context, theme *styles.Theme, cfg ShortcutsModelConfig) ShortcutsModel {
	sync := newTableSync(cfg.Registry.NeedSave())

	m := ShortcutsModel{
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultEditorKeyMap(),
		dkeys:       styles.DefaultDialogKeyMap(),
		sync:        sync,
		unsubscribe: cfg.Registry.Subscribe(sync),
		width:       80,
		height:      24,
		ctx:         logging.WithComponent(ctx, "editor"),
		registry:    cfg.Registry,
		engine:      cfg.Engine,
		listUC:      cfg.ListRulesUC,
		addUC:       cfg.AddShortcutUC,
		removeUC:    cfg.RemoveShortcutUC,
		switchUC:    cfg.SwitchRuleUC,
		saveUC:      cfg.SaveShortcutsUC,
		theme:       theme,
	}
	m.table = styles.NewStyledTable(theme, styles.ShortcutTableColumns(m.width), nil, m.width, m.tableHeight())
	m.syncRows()
	return m
}

// Close stops observing the registry.
func (m ShortcutsModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m ShortcutsModel) Init() tea.Cmd {
	return m.loadRules
}

func (m ShortcutsModel) loadRules() tea.Msg {
	if m.listUC == nil {
		return rulesLoadedMsg{err: fmt.Errorf("rule catalog not available")}
	}
	rules, err := m.listUC.Execute(m.ctx)
	return rulesLoadedMsg{rules: rules, err: err}
}

func (m ShortcutsModel) tableHeight() int {
	return max(3, m.height-chromeHeight)
}

// syncRows rebuilds the table rows from the registry when a notification
// marked them stale. The cursor follows an inserted row and stays in place
// after a removal.
func (m *ShortcutsModel) syncRows() {
	s := m.sync
	if !s.stale || s.resetting {
		return
	}

	rows := make([]table.Row, m.registry.Len())
	for i := range rows {
		rows[i] = table.Row{
			m.registry.Cell(i, shortcut.ColumnMode),
			m.registry.Cell(i, shortcut.ColumnKey),
			m.registry.Cell(i, shortcut.ColumnLabel),
		}
	}
	m.table.SetRows(rows)

	switch {
	case s.inserted >= 0:
		m.table.SetCursor(s.inserted)
	case s.removed >= 0:
		m.table.SetCursor(min(s.removed, len(rows)-1))
	case m.table.Cursor() >= len(rows):
		m.table.SetCursor(max(0, len(rows)-1))
	}

	s.stale = false
	s.inserted, s.removed = -1, -1
}

// selectedRow returns the highlighted registry row, or -1 when nothing can
// be removed.
func (m ShortcutsModel) selectedRow() int {
	row := m.table.Cursor()
	if row < 0 || row >= m.registry.Len() {
		return -1
	}
	return row
}

// Update implements tea.Model.
func (m ShortcutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(styles.ShortcutTableColumns(msg.Width))
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case ThemeChangedMsg:
		m.applyTheme(msg.Theme)
		return m, nil

	case rulesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rules = msg.rules
		m.ruleCursor = usecase.FindRule(m.rules, m.registry.ActiveRule())
		return m, nil

	case addSubmitMsg:
		return m.submitAdd(msg.input)

	case addCanceledMsg:
		m.view = viewTable
		return m, nil
	}

	if m.prompt != nil {
		return m.handlePrompt(msg)
	}

	switch m.view {
	case viewAdd:
		var cmd tea.Cmd
		m.add, cmd = m.add.Update(msg)
		return m, cmd
	case viewRules:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleRulesKey(keyMsg)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleTableKey(keyMsg)
	}
	return m, nil
}

func (m *ShortcutsModel) applyTheme(theme *styles.Theme) {
	if theme == nil {
		return
	}
	m.theme = theme
	m.help = styles.NewStyledHelp(theme)
	m.help.Width = m.width

	rebuilt := styles.NewStyledTable(theme, styles.ShortcutTableColumns(m.width), m.table.Rows(), m.width, m.tableHeight())
	rebuilt.SetCursor(m.table.Cursor())
	m.table = rebuilt

	if m.view == viewAdd {
		m.add.theme = theme
	}
}

func (m ShortcutsModel) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.registry.NeedSave() {
			m.openSavePrompt(pendingQuit, "")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		if !m.registry.Loaded() {
			m.err = entity.ErrNoRuleLoaded
			return m, nil
		}
		mode := entity.InputModeHiragana
		if row := m.selectedRow(); row >= 0 {
			b, _ := m.registry.At(row)
			mode = b.Mode
		}
		m.add = newAddDialog(m.theme, mode, m.engine.Commands(), m.engine.CommandLabel)
		m.view = viewAdd
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected()

	case key.Matches(msg, m.keys.Rule):
		m.ruleCursor = usecase.FindRule(m.rules, m.registry.ActiveRule())
		m.view = viewRules
		return m, m.loadRules

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Revert):
		if !m.registry.NeedSave() {
			return m, nil
		}
		rule := m.registry.ActiveRule()
		if _, err := m.switchUC.Execute(m.ctx, rule, usecase.DecisionDiscard); err != nil {
			m.err = err
		} else {
			m.status = "Reverted " + rule
		}
		m.syncRows()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ShortcutsModel) handleRulesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.dkeys.Cancel), key.Matches(msg, m.keys.Quit):
		m.view = viewTable
		return m, nil
	case key.Matches(msg, m.dkeys.Up), key.Matches(msg, m.keys.Up):
		if m.ruleCursor > 0 {
			m.ruleCursor--
		}
		return m, nil
	case key.Matches(msg, m.dkeys.Down), key.Matches(msg, m.keys.Down):
		if m.ruleCursor < len(m.rules)-1 {
			m.ruleCursor++
		}
		return m, nil
	case key.Matches(msg, m.dkeys.Accept):
		if m.ruleCursor < 0 || m.ruleCursor >= len(m.rules) {
			return m, nil
		}
		name := m.rules[m.ruleCursor].Name
		m.view = viewTable
		if name == m.registry.ActiveRule() && m.registry.Loaded() {
			return m, nil
		}
		if m.registry.NeedSave() {
			m.openSavePrompt(pendingSwitch, name)
			return m, nil
		}
		m.switchRule(name, usecase.DecisionDiscard)
		return m, nil
	}
	return m, nil
}

func (m *ShortcutsModel) openSavePrompt(action pendingAction, rule string) {
	p := styles.NewPrompt(m.theme,
		fmt.Sprintf("Save changes to %s?", m.registry.ActiveRule()),
		styles.PromptChoice{Label: "Save", Key: "s"},
		styles.PromptChoice{Label: "Discard", Key: "d"},
		styles.PromptChoice{Label: "Cancel", Key: "c"},
	)
	p.Detail = "Your changes will be lost if you don't save them."
	m.prompt = &p
	m.pending = action
	m.pendingRule = rule
}

func (m ShortcutsModel) handlePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	p, cmd := m.prompt.Update(msg)
	m.prompt = &p
	if !p.Done() {
		return m, cmd
	}
	m.prompt = nil

	choice := p.Choice()
	if choice < 0 {
		choice = choiceCancel
	}

	switch m.pending {
	case pendingSwitch:
		decision := [...]usecase.SwitchDecision{
			choiceSave:    usecase.DecisionSave,
			choiceDiscard: usecase.DecisionDiscard,
			choiceCancel:  usecase.DecisionCancel,
		}[choice]
		m.switchRule(m.pendingRule, decision)
		return m, nil

	case pendingQuit:
		switch choice {
		case choiceSave:
			if err := m.saveUC.Execute(m.ctx, m.registry.ActiveRule()); err != nil {
				m.err = err
				return m, nil
			}
		case choiceCancel:
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *ShortcutsModel) switchRule(name string, decision usecase.SwitchDecision) {
	log := logging.FromContext(m.ctx)

	switched, err := m.switchUC.Execute(m.ctx, name, decision)
	m.syncRows()
	if err != nil {
		log.Error().Err(err).Str("rule", name).Msg("editor: switch rule")
		m.err = err
	}
	if !switched {
		m.ruleCursor = usecase.FindRule(m.rules, m.registry.ActiveRule())
		return
	}
	m.ruleCursor = usecase.FindRule(m.rules, name)
	if !m.registry.Loaded() {
		m.status = fmt.Sprintf("Rule %s could not be opened", name)
		return
	}
	m.status = "Switched to " + name
}

func (m ShortcutsModel) submitAdd(input usecase.AddShortcutInput) (tea.Model, tea.Cmd) {
	binding, err := m.addUC.Execute(m.ctx, input)
	if err != nil {
		m.add.err = friendlyAddError(err)
		return m, nil
	}
	m.syncRows()
	m.view = viewTable
	m.status = fmt.Sprintf("Added %s → %s", binding.KeyString(), binding.Label)
	return m, nil
}

func friendlyAddError(err error) error {
	switch {
	case errors.Is(err, entity.ErrParse):
		return fmt.Errorf("not a valid shortcut: %w", err)
	case errors.Is(err, entity.ErrKeyConflict):
		return fmt.Errorf("already bound: %w", err)
	}
	return err
}

func (m ShortcutsModel) removeSelected() (tea.Model, tea.Cmd) {
	row := m.selectedRow()
	if row < 0 {
		return m, nil
	}
	b, _ := m.registry.At(row)

	removed, err := m.removeUC.Execute(m.ctx, usecase.RemoveShortcutInput{Mode: b.Mode, Key: b.KeyString()})
	if err != nil {
		m.err = err
		return m, nil
	}
	m.syncRows()
	m.status = "Removed " + removed.KeyString()
	return m, nil
}

func (m ShortcutsModel) save() (tea.Model, tea.Cmd) {
	if !m.registry.Loaded() {
		m.err = entity.ErrNoRuleLoaded
		return m, nil
	}
	rule := m.registry.ActiveRule()
	if err := m.saveUC.Execute(m.ctx, rule); err != nil {
		m.err = err
		return m, nil
	}
	m.status = "Saved " + rule
	return m, nil
}

// View implements tea.Model.
func (m ShortcutsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.prompt != nil {
		return m.centered(m.prompt.View())
	}

	switch m.view {
	case viewAdd:
		return m.centered(m.add.View())
	case viewRules:
		return m.centered(m.renderRules())
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.registry.Loaded() && m.registry.Len() == 0 {
		b.WriteString(t.Subtle.Render("  No shortcuts yet. Press a to add one."))
		b.WriteString("\n")
	} else if !m.registry.Loaded() {
		b.WriteString(t.Subtle.Render("  No rule loaded. Press r to choose one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
	case m.status != "":
		b.WriteString(t.Subtle.Render(m.status))
	}
	b.WriteString("\n")

	keys := m.keys
	keys.Remove.SetEnabled(m.selectedRow() >= 0)
	keys.Revert.SetEnabled(m.sync.dirty)
	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m ShortcutsModel) renderHeader() string {
	t := m.theme

	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconKeyboard)
	title := t.Title.MarginLeft(1).Render("Shortcuts")

	parts := []string{icon + title}
	if rule := m.registry.ActiveRule(); rule != "" {
		parts = append(parts, t.RuleBadge(rule))
	}
	parts = append(parts, t.Subtle.Render(fmt.Sprintf("%d bound", m.registry.Len())))
	if dirty := t.DirtyBadge(m.sync.dirty); dirty != "" {
		parts = append(parts, dirty)
	}
	return strings.Join(parts, "  ")
}

func (m ShortcutsModel) renderRules() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Rule"))
	b.WriteString("\n\n")

	if len(m.rules) == 0 {
		b.WriteString(t.Subtle.Render("No rules found."))
		return t.Box.Render(b.String())
	}

	active := m.registry.ActiveRule()
	for i, r := range m.rules {
		marker := "  "
		if r.Name == active {
			marker = styles.IconActive + " "
		}
		line := marker + r.DisplayName()
		if i == m.ruleCursor {
			b.WriteString(t.ListItemSelected.Render(line))
		} else {
			b.WriteString(t.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.dkeys.Up, m.dkeys.Down, m.dkeys.Accept, m.dkeys.Cancel}))
	return t.Box.Render(b.String())
}

func (m ShortcutsModel) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
