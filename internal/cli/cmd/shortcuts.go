package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
	"github.com/bnema/kkc-shortcuts/internal/cli"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/kkc"
)

var shortcutRule string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List conversion rules",
	Long:  `List every rule found on the rule search path. The active rule is marked.`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

var useCmd = &cobra.Command{
	Use:   "use <rule>",
	Short: "Set the active rule",
	Long: `Record <rule> as the rule the editor opens with.

The name is written to the active-rule file in the config directory.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runUse,
	ValidArgsFunction: completeRules,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the shortcuts of a rule",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var addCmd = &cobra.Command{
	Use:   "add <mode> <key> <command>",
	Short: "Bind a key to a command and save",
	Long: `Bind <key> to <command> in input mode <mode>, then save the rule.

Modes: hiragana, katakana, hankaku-katakana, latin, wide-latin, direct.
Keys use libkkc notation such as "C-j", "(control j)" or "Shift+Tab".
See 'kkc-shortcuts commands' for command names.

Examples:
  kkc-shortcuts add hiragana C-j commit
  kkc-shortcuts add latin "(control j)" set-input-mode-hiragana`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:     "remove <mode> <key>",
	Aliases: []string{"rm"},
	Short:   "Unbind a key and save",
	Args:    cobra.ExactArgs(2),
	RunE:    runRemove,
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands a key can be bound to",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		r := styles.NewShortcutsCLIRenderer(app.Theme)
		fmt.Println(r.RenderCommands(app.Engine.Commands(), app.Engine.CommandLabel))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd, useCmd, listCmd, addCmd, removeCmd, commandsCmd)

	for _, c := range []*cobra.Command{listCmd, addCmd, removeCmd} {
		c.Flags().StringVarP(&shortcutRule, "rule", "r", "", "rule to work on instead of the active one")
		_ = c.RegisterFlagCompletionFunc("rule", completeRules)
	}
	addCmd.ValidArgsFunction = completeAddArgs
	removeCmd.ValidArgsFunction = completeModes
}

func runRules(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	rules, err := app.ListRulesUC.Execute(ctx)
	if err != nil {
		return err
	}
	active, err := app.ActiveRuleUC.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutsCLIRenderer(app.Theme).RenderRules(rules, active))
	return nil
}

func runUse(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	rule, err := app.Catalog.ResolveRule(ctx, args[0])
	if err != nil {
		return err
	}
	if err := app.ActiveRuleUC.Save(ctx, rule.Name); err != nil {
		return err
	}

	fmt.Printf("%s Active rule is now %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), app.Theme.Highlight.Render(rule.Name))
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	rule, err := loadRule(app)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewShortcutsCLIRenderer(app.Theme).RenderShortcuts(rule, app.Registry.Entries()))
	return nil
}

func runAdd(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	mode, err := entity.ParseInputMode(args[0])
	if err != nil {
		return err
	}
	rule, err := loadRule(app)
	if err != nil {
		return err
	}

	binding, err := app.AddShortcutUC.Execute(app.Ctx(), usecase.AddShortcutInput{
		Mode:    mode,
		Key:     args[1],
		Command: args[2],
	})
	if err != nil {
		return err
	}
	if err := app.Registry.Save(app.Ctx()); err != nil {
		return fmt.Errorf("save %s: %w", rule, err)
	}

	fmt.Println(styles.NewShortcutsCLIRenderer(app.Theme).RenderAdded(binding))
	return nil
}

func runRemove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	mode, err := entity.ParseInputMode(args[0])
	if err != nil {
		return err
	}
	rule, err := loadRule(app)
	if err != nil {
		return err
	}

	binding, err := app.RemoveShortcutUC.Execute(app.Ctx(), usecase.RemoveShortcutInput{Mode: mode, Key: args[1]})
	if err != nil {
		return err
	}
	if err := app.Registry.Save(app.Ctx()); err != nil {
		return fmt.Errorf("save %s: %w", rule, err)
	}

	fmt.Println(styles.NewShortcutsCLIRenderer(app.Theme).RenderRemoved(binding))
	return nil
}

// loadRule loads --rule, or the active rule, into the registry.
func loadRule(app *cli.App) (string, error) {
	ctx := app.Ctx()
	rule := shortcutRule

	if rule == "" {
		active, err := app.LoadActiveRule()
		if err != nil {
			return "", err
		}
		rule = active
	} else {
		if _, err := app.Catalog.ResolveRule(ctx, rule); err != nil {
			return "", err
		}
		if err := app.Registry.Load(ctx, rule); err != nil {
			return "", err
		}
	}

	if !app.Registry.Loaded() {
		return "", fmt.Errorf("%w: %s", entity.ErrRuleOpen, rule)
	}
	return rule, nil
}

func completeRules(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	app := GetApp()
	if app == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	rules, err := app.ListRulesUC.Execute(app.Ctx())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, r := range rules {
		if strings.HasPrefix(r.Name, toComplete) {
			names = append(names, r.Name+"\t"+r.DisplayName())
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completeModes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	modes := make([]string, 0, entity.InputModeCount)
	for _, m := range entity.AllInputModes() {
		modes = append(modes, m.FileName()+"\t"+m.DisplayName())
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}

func completeAddArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeModes(cmd, args, toComplete)
	case 2:
		var out []string
		for _, c := range kkc.Commands() {
			if strings.HasPrefix(c, toComplete) {
				out = append(out, c+"\t"+kkc.CommandLabel(c))
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
