package provider

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/smmpanel/panel/internal/application/provider/usecases"
	"github.com/smmpanel/panel/internal/infrastructure/database"
	"github.com/smmpanel/panel/internal/infrastructure/repository"
	"github.com/smmpanel/panel/internal/interfaces/cli/bootstrap"
	"github.com/smmpanel/panel/internal/shared/biztime"
	"github.com/smmpanel/panel/internal/shared/constants"
)

var (
	env        string
	configPath string
	filePath   string
	dryRun     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Provider management tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newImportCommand())

	return cmd
}

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create providers from a YAML file",
		Long: `Create providers listed in a YAML file. Each entry goes through the same
validation as the admin API; failing entries are reported and skipped.`,
		RunE: runImport,
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the YAML import file (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and list the entries without writing")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	entries, err := ParseImportFile(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		for _, e := range entries {
			fmt.Fprintf(out, "%s\tactivate=%t\n", e.Create.Name, e.Activate)
		}
		return nil
	}

	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	repo := repository.NewProviderRepository(db, log)
	tx := database.NewTransactionManager(db, &cfg.Database)
	importUC := usecases.NewImportProvidersUseCase(
		usecases.NewCreateProviderUseCase(repo, log),
		usecases.NewUpdateProviderUseCase(repo, tx, log),
		log,
	)

	result, err := importUC.Execute(cmd.Context(), entries)
	if result != nil {
		printImportResult(out, result)
	}
	if err != nil {
		return fmt.Errorf("import interrupted: %w", err)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d providers failed to import", len(result.Failed), len(entries))
	}
	return nil
}

func printImportResult(out io.Writer, result *usecases.ImportProvidersResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tCREATED")
	for _, p := range result.Created {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Status, biztime.FormatInBizTimezone(p.CreatedAt, time.DateTime))
	}
	w.Flush()

	for _, f := range result.Failed {
		fmt.Fprintf(out, "skipped %q: %s\n", f.Name, f.Reason)
	}
}
