package cli

import (
	"fmt"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show checklist progress and pending items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.resolveConfig(config.HookInput{}, projectDir)

			resp, err := a.Status.GetStatus(cmd.Context(), app.StatusRequest{Config: cfg})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project-dir", "", "Project root (overrides WAYPOINT_PROJECT_DIR)")

	return cmd
}
