package cli

import (
	"io"
	"path/filepath"

	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Track   service.ProgressService
	Status  service.StatusService
	History service.HistoryService // nil when run history is disabled

	// Stdin carries the optional hook payload.
	Stdin io.Reader
	// IsInteractive reports whether stdin is a terminal, in which case no
	// hook payload is read.
	IsInteractive func() bool
	// LoadConfig builds the run configuration; defaults to config.LoadConfig.
	LoadConfig func(config.HookInput) config.Config
}

// NewRootCmd creates the top-level "waypoint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "waypoint",
		Short:         "Keep a project checklist in step with the files you change",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newHookCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
	)

	return root
}

// resolveConfig resolves the run configuration, applying a --project-dir
// override on top of the environment and hook input.
func (a *App) resolveConfig(input config.HookInput, projectDir string) config.Config {
	load := a.LoadConfig
	if load == nil {
		load = config.LoadConfig
	}
	cfg := load(input)
	if projectDir != "" {
		if abs, err := filepath.Abs(projectDir); err == nil {
			projectDir = abs
		}
		cfg.ProjectRoot = projectDir
	}
	return cfg
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
