package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewReportCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manage the working report and saved reports",
	}

	cmd.AddCommand(
		newReportNewCmd(deps),
		newReportSaveCmd(deps),
		newReportListCmd(deps),
		newReportLoadCmd(deps),
		newReportDeleteCmd(deps),
		newReportShowCmd(deps),
		newReportClientCmd(deps),
	)
	return cmd
}

func newReportNewCmd(deps Deps) *cobra.Command {
	var (
		preset, client, currency, language string
		inflation                          float64
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new working report (unsaved changes are discarded)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var info report.ClientInfo
			if cmd.Flags().Changed("client") {
				info.ClientName = &client
			}
			if cmd.Flags().Changed("currency") {
				info.Currency = &currency
			}

			var overrides report.SettingsChanges
			if cmd.Flags().Changed("language") {
				overrides.Language = &language
			}
			if cmd.Flags().Changed("inflation-rate") {
				overrides.InflationRate = &inflation
			}

			created, err := deps.App().NewReport(cmd.Context(), preset, info, overrides)
			if err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created report %s (%s)\n", created.ReportNumber, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Settings preset to apply")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code")
	cmd.Flags().StringVar(&language, "language", "", "Report language, overrides the preset")
	cmd.Flags().Float64Var(&inflation, "inflation-rate", 0, "Yearly inflation rate, overrides the preset")
	return cmd
}

func newReportSaveCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the working report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := deps.App().Store
			store.SaveCurrentReport(cmd.Context())
			r := store.Report()
			fmt.Fprintf(cmd.OutOrStdout(), "Saved report %s (%s)\n", r.ReportNumber, r.ID)
			return nil
		},
	}
}

func newReportListCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := deps.App().Store
			return deps.Lister.HandleSaved(store.Report(), store.SavedReports())
		},
	}
}

func newReportLoadCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "load <report-id>",
		Short: "Load a saved report into the working slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.App().Store.LoadSavedReport(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded report %s\n", args[0])
			return nil
		},
	}
}

func newReportDeleteCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <report-id>",
		Short: "Delete a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps.App().Store.DeleteSavedReport(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", args[0])
			return nil
		},
	}
}

func newReportShowCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the working report with its ROI figures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := deps.App().Store
			r := store.Report()
			calc := store.Calculator()
			return deps.Exporter.Handle(r, calc.Results(r), calc.Summary(r))
		},
	}
}

func newReportClientCmd(deps Deps) *cobra.Command {
	var number, date, client, currency string
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Update report number, date, client name or currency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var info report.ClientInfo
			if cmd.Flags().Changed("number") {
				info.ReportNumber = &number
			}
			if cmd.Flags().Changed("date") {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				info.ReportDate = &d
			}
			if cmd.Flags().Changed("client") {
				info.ClientName = &client
			}
			if cmd.Flags().Changed("currency") {
				info.Currency = &currency
			}

			deps.App().Store.SetClientInfo(cmd.Context(), info)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Report number")
	cmd.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code")
	return cmd
}
