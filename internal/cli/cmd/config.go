package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/kkc-shortcuts/internal/cli"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

const defaultEditor = "vi"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, validate and edit config.toml, and print its JSON Schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults and KKC_SHORTCUTS_* environment overrides.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		data, err := config.EncodeOrdered(app.Config)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the files and directories in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.toml",
	Long: `Print the JSON Schema of config.toml.

Editors with TOML language servers (taplo, even-better-toml) can use it
for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check config.toml",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Loading already validated the file; reaching here means it passed.
		app, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderValid(app.Manager.GetConfigFile()))
		return nil
	},
}

var configOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open config.toml in $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigOpen,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configSchemaCmd, configValidateCmd, configOpenCmd)
}

// schema and validate still go through the root pre-run: a broken file
// fails there with the validation report.

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	activeRule, err := app.Paths.ActiveRuleFile()
	if err != nil {
		return err
	}
	logFile, err := cli.LogFile()
	if err != nil {
		return err
	}

	entries := []styles.PathEntry{
		{Kind: styles.PathConfig, Label: "config", Path: app.Manager.GetConfigFile()},
		{Kind: styles.PathRule, Label: "active rule", Path: activeRule},
		{Kind: styles.PathDir, Label: "user rules", Path: app.Config.Engine.UserRuleDir},
		{Kind: styles.PathLog, Label: "log", Path: logFile},
	}
	if app.Config.Engine.Storage == config.StorageSQLite {
		entries = append(entries, styles.PathEntry{Kind: styles.PathDatabase, Label: "database", Path: app.Config.Database.Path})
	}
	for _, root := range app.Catalog.Roots() {
		entries = append(entries, styles.PathEntry{Kind: styles.PathDir, Label: "rule root", Path: root})
	}

	fmt.Print(styles.NewConfigRenderer(app.Theme).RenderPaths(entries))
	return nil
}

func runConfigOpen(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = defaultEditor
	}

	path := app.Manager.GetConfigFile()
	fmt.Print(styles.NewConfigRenderer(app.Theme).RenderOpening(path, editor))

	c := exec.Command(editor, path)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("run %s: %w", editor, err)
	}
	return nil
}
