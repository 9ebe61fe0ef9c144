package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/kkc-shortcuts/internal/cli/model"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive shortcut editor",
	Long: `Open the shortcut editor on the active rule.

Keys:
  a       add a shortcut
  d       remove the selected shortcut
  r       choose another rule
  s       save and remember the rule
  u       revert unsaved changes
  q       quit (asks before dropping unsaved changes)

Logs go to the state directory, see 'kkc-shortcuts logs'.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	log := logging.FromContext(app.Ctx())

	rule, err := app.LoadActiveRule()
	if err != nil {
		return err
	}
	log.Info().Str("rule", rule).Int("bindings", app.Registry.Len()).Msg("editor: starting")

	m := model.NewShortcutsModel(app.Ctx(), app.Theme, model.ShortcutsModelConfig{
		Registry:         app.Registry,
		Engine:           app.Engine,
		ListRulesUC:      app.ListRulesUC,
		AddShortcutUC:    app.AddShortcutUC,
		RemoveShortcutUC: app.RemoveShortcutUC,
		SwitchRuleUC:     app.SwitchRuleUC,
		SaveShortcutsUC:  app.SaveShortcutsUC,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(cfg)})
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("editor: config watch unavailable")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
