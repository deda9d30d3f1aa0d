package cli

import (
	"fmt"
	"os"

	"car-rental-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

// MigrateOptions holds flags for the migrate command.
type MigrateOptions struct {
	*RootOptions
	Dir      string
	AtlasBin string
	DryRun   bool
}

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MigrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply the versioned migrations in the migrations directory with the atlas CLI.

Examples:
  rentalctl migrate
  rentalctl migrate --dir ./migrations --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	cmd.Flags().StringVar(&opts.AtlasBin, "atlas", "atlas", "path to the atlas binary")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print pending migrations without executing them")

	return cmd
}

func runMigrate(cmd *cobra.Command, opts *MigrateOptions) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load database config", err)
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(opts.Dir)))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load migrations", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), opts.AtlasBin)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to start atlas", err)
	}

	opts.verbosef(cmd, "applying migrations from %s to %s:%s/%s", opts.Dir, dbCfg.Host, dbCfg.Port, dbCfg.DBName)

	res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: opts.DryRun,
	})
	if err != nil {
		return WrapExitError(ExitFailure, "migration failed", err)
	}

	out := cmd.OutOrStdout()
	if len(res.Applied) == 0 {
		fmt.Fprintf(out, "No migrations to apply (current version %s)\n", res.Current)
		return nil
	}
	for _, f := range res.Applied {
		fmt.Fprintf(out, "applied %s\n", f.Name)
	}
	fmt.Fprintf(out, "Migrated from %s to %s\n", versionOrNone(res.Current), res.Target)
	return nil
}

func versionOrNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
