package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *App) *cobra.Command {
	var projectDir string
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recent hook runs, or show one run in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.History == nil {
				return errors.New("run history is disabled (WAYPOINT_DB=off or database unavailable)")
			}

			if len(args) == 1 {
				run, err := a.History.GetRun(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("loading run %s: %w", args[0], err)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRun(run))
				return nil
			}

			req := app.HistoryRequest{Limit: limit}
			if !all {
				req.ProjectRoot = a.resolveConfig(config.HookInput{}, projectDir).ProjectRoot
			}
			runs, err := a.History.ListRecent(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(runs, all))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project-dir", "", "Project root (overrides WAYPOINT_PROJECT_DIR)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().BoolVar(&all, "all", false, "List runs for every project")

	return cmd
}
