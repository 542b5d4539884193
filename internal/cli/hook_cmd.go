package cli

import (
	"fmt"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/spf13/cobra"
)

func newHookCmd(a *App) *cobra.Command {
	var projectDir string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Update the checklist from recent changes (run after each tool use)",
		Long: `Detects recently changed files, marks matching checklist items and
appends progress records according to the session's remaining context.

A JSON payload with session_id, transcript_path and cwd may be piped on
stdin. The command always exits 0 so it never interrupts the caller.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input config.HookInput
			if !a.interactive() {
				input = config.ReadHookInput(a.Stdin)
			}
			cfg := a.resolveConfig(input, projectDir)

			resp, err := a.Track.Track(cmd.Context(), app.TrackRequest{Config: cfg})
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "waypoint: %v\n", err)
				return nil
			}
			if !quiet {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrackReport(resp))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project-dir", "", "Project root (overrides WAYPOINT_PROJECT_DIR and hook cwd)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the console report")

	return cmd
}
