package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	Args:    cobra.NoArgs,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version only")
}

// runVersion works without a config file, so it uses the default palette.
func runVersion(_ *cobra.Command, _ []string) error {
	if versionShort {
		fmt.Println(buildInfo.Version)
		return nil
	}
	theme := styles.NewTheme(config.DefaultConfig())
	fmt.Println(styles.NewAboutRenderer(theme).Render(buildInfo))
	return nil
}
