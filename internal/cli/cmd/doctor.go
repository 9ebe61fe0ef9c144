package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/filesystem"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

var errDoctorFailed = errors.New("some checks failed")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check rule roots, the active rule and user rule storage",
	Long: `Doctor checks that kkc-shortcuts can work on this system:

- every rule root exists and at least one rule is installed
- the active rule is still installed
- user rules can be stored (JSON directory or SQLite database)

It exits non-zero when a check fails. Warnings do not fail the run.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	uc := usecase.NewDoctorUseCase(app.Catalog, app.ActiveRuleUC, filesystem.Exists)
	out, err := uc.Execute(logging.WithComponent(app.Ctx(), "doctor"), usecase.DoctorInput{
		Roots:    app.Catalog.Roots(),
		Database: app.Database(),
	})
	if err != nil {
		return err
	}

	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(out))
	if !out.OK {
		return errDoctorFailed
	}
	return nil
}
