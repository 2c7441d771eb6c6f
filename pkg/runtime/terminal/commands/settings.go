package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewSettingsCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage global report settings",
	}
	cmd.AddCommand(newSettingsSetCmd(deps), newPresetsCmd(deps))
	return cmd
}

func newSettingsSetCmd(deps Deps) *cobra.Command {
	var (
		language, start, end          string
		inflation, estCost, minCost   float64
		factor, people, process, tech float64
		days                          int
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings of the working report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := cmd.Flags().Changed
			var c report.SettingsChanges
			if set("language") {
				c.Language = &language
			}
			if set("inflation") {
				c.InflationRate = &inflation
			}
			if set("start") {
				d, err := time.Parse(time.DateOnly, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", start)
				}
				c.ProjectStart = &d
			}
			if set("end") {
				d, err := time.Parse(time.DateOnly, end)
				if err != nil {
					return fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", end)
				}
				c.ProjectEnd = &d
			}
			if set("est-cost") {
				c.EstTransformationCost = &estCost
			}
			if set("min-cost") {
				c.MinTransformationCost = &minCost
			}
			if set("days") {
				c.ImplementationDays = &days
			}
			if set("factor") {
				c.TransformationCostFactor = &factor
			}
			if set("people") || set("process") || set("tech") {
				b := deps.App().Store.Report().Settings.Breakdown
				if set("people") {
					b.People = people
				}
				if set("process") {
					b.Process = process
				}
				if set("tech") {
					b.Tech = tech
				}
				c.Breakdown = &b
			}

			deps.App().Store.UpdateSettings(cmd.Context(), c)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&language, "language", "", "Report language (pl, en)")
	flags.Float64Var(&inflation, "inflation", 0, "Yearly inflation rate")
	flags.StringVar(&start, "start", "", "Project start (YYYY-MM-DD)")
	flags.StringVar(&end, "end", "", "Project end (YYYY-MM-DD)")
	flags.Float64Var(&estCost, "est-cost", 0, "Estimated total transformation cost")
	flags.Float64Var(&minCost, "min-cost", 0, "Minimum transformation cost")
	flags.IntVar(&days, "days", 0, "Implementation days")
	flags.Float64Var(&factor, "factor", 0, "Transformation cost factor")
	flags.Float64Var(&people, "people", 0, "People share of the transformation budget")
	flags.Float64Var(&process, "process", 0, "Process share of the transformation budget")
	flags.Float64Var(&tech, "tech", 0, "Tech share of the transformation budget")
	return cmd
}

func newPresetsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List configured settings presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := deps.App().Presets
			if presets == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No presets file configured.")
				return nil
			}
			profiles, err := presets.GetProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list presets: %w", err)
			}
			for _, p := range profiles {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
