package cli

import (
	"fmt"
	"io"
	"time"

	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/infra/readstore"
	"car-rental-api/internal/infra/uow"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/queries"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ReportOptions holds flags for the report subcommands.
type ReportOptions struct {
	*RootOptions
	OlderThan time.Duration
}

func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print operational reports",
	}

	overdue := &cobra.Command{
		Use:   "overdue",
		Short: "List open rentals older than a threshold",
		Long: `List open rentals older than a threshold, oldest first.

Examples:
  rentalctl report overdue
  rentalctl report overdue --older-than 24h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverdueReport(cmd, opts)
		},
	}
	overdue.Flags().DurationVar(&opts.OlderThan, "older-than", 72*time.Hour, "minimum age of an open rental")

	cmd.AddCommand(overdue)
	return cmd
}

func runOverdueReport(cmd *cobra.Command, opts *ReportOptions) error {
	if opts.OlderThan <= 0 {
		return WrapExitError(ExitCommandError, "--older-than must be positive", nil)
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load database config", err)
	}

	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to connect to database", err)
	}
	defer cleanup()

	q := pg.New()
	rentals := queries.NewRentalQueries(
		readstore.NewRentalReadStore(q, pool, uow.NewPostgresUoW(pool, q)),
		readstore.NewUserReadStore(q, pool),
		clock.NewRealClock(),
	)

	overdue, err := rentals.ListOverdue(cmd.Context(), opts.OlderThan)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list overdue rentals", err)
	}

	RenderOverdueTable(cmd.OutOrStdout(), overdue, time.Now().UTC())
	return nil
}

// RenderOverdueTable writes one row per rental with its age relative to now.
func RenderOverdueTable(w io.Writer, rentals []queries.OverdueRentalView, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rental", "User", "Car", "Rented at", "Age"})

	for _, r := range rentals {
		t.AppendRow(table.Row{
			r.RentalID,
			fmt.Sprintf("%s (#%d)", r.UserEmail, r.UserID),
			fmt.Sprintf("%s %s (#%d)", r.CarMake, r.CarModel, r.CarID),
			r.RentalDate.UTC().Format(time.RFC3339),
			now.Sub(r.RentalDate).Truncate(time.Minute).String(),
		})
	}

	t.AppendFooter(table.Row{"", "", "", "Total", len(rentals)})
	t.Render()
}
