package commands

import (
	"fmt"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewOperationCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "op",
		Aliases: []string{"operation"},
		Short:   "Manage operations of the working report",
	}

	cmd.AddCommand(
		newOperationListCmd(deps),
		newOperationAddCmd(deps),
		newOperationUpdateCmd(deps),
		newOperationRemoveCmd(deps),
		newOperationDuplicateCmd(deps),
		newOperationROICmd(deps),
	)
	return cmd
}

func newOperationListCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.Lister.HandleOperations(deps.App().Store.Report())
		},
	}
}

func newOperationAddCmd(deps Deps) *cobra.Command {
	f := &operationFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an operation built from the default template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			changes, err := f.changes(cmd, report.DefaultOperation())
			if err != nil {
				return err
			}
			op := deps.App().Store.AddOperation(cmd.Context(), changes)
			fmt.Fprintf(cmd.OutOrStdout(), "Added operation %s (%s)\n", op.Name, op.ID)
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newOperationUpdateCmd(deps Deps) *cobra.Command {
	f := &operationFlags{}
	cmd := &cobra.Command{
		Use:   "update <operation-id>",
		Short: "Update fields of an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := deps.App().Store
			op, err := findOperation(store.Report(), args[0])
			if err != nil {
				return err
			}
			changes, err := f.changes(cmd, op)
			if err != nil {
				return err
			}
			store.UpdateOperation(cmd.Context(), op.ID, changes)
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newOperationRemoveCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <operation-id>",
		Short: "Remove an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps.App().Store.RemoveOperation(cmd.Context(), args[0])
			return nil
		},
	}
}

func newOperationDuplicateCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <operation-id>",
		Short: "Duplicate an operation under a new id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dup, ok := deps.App().Store.DuplicateOperation(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("operation %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added operation %s (%s)\n", dup.Name, dup.ID)
			return nil
		},
	}
}

func newOperationROICmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "roi <operation-id>",
		Short: "Print the ROI figures of one operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, ok := deps.App().Store.OperationROI(args[0])
			if !ok {
				return fmt.Errorf("operation %s not found", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Investment:  %.2f\n", result.TotalInvestment)
			fmt.Fprintf(out, "ROI 1Y:      %.1f%% (%.2f)\n", result.ROIPercent1Y, result.ROIValue1Y)
			fmt.Fprintf(out, "ROI 3Y:      %.1f%% (%.2f)\n", result.ROIPercent3Y, result.ROIValue3Y)
			if result.PaybackMonths >= domain.PaybackNever {
				fmt.Fprintln(out, "Payback:     never")
			} else {
				fmt.Fprintf(out, "Payback:     %.1f months\n", result.PaybackMonths)
			}
			return nil
		},
	}
}

func findOperation(r domain.Report, id string) (domain.Operation, error) {
	i := r.FindOperation(id)
	if i < 0 {
		return domain.Operation{}, fmt.Errorf("operation %s not found", id)
	}
	return r.Operations[i], nil
}
