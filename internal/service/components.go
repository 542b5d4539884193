package service

import (
	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/changes"
	"github.com/alexanderramin/waypoint/internal/checklist"
	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/estimator"
	"github.com/alexanderramin/waypoint/internal/vcs"
)

// ComponentFactory builds the per-project collaborators for a config.
type ComponentFactory func(cfg config.Config) app.Components

// DefaultComponents wires the git-backed detector and locator and the
// transcript estimator.
func DefaultComponents(cfg config.Config) app.Components {
	repo := vcs.NewRepository(cfg.ProjectRoot, cfg.CommandTimeout)
	return app.Components{
		Estimator: estimator.New(cfg.ResolveTranscript()),
		Detector:  changes.NewDetector(cfg, repo),
		Locator:   checklist.NewLocator(cfg, repo),
	}
}
