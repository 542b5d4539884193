package app

import (
	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/estimator"
)

type StatusRequest struct {
	Config config.Config
}

// StatusResponse is a read-only view of a project's checklist.
type StatusResponse struct {
	ProjectRoot   string
	ChecklistPath string
	SkipReason    string
	Estimate      estimator.Estimate
	Level         domain.ResourceLevel
	Progress      domain.ProgressSnapshot
	Pending       []domain.ChecklistItem
	LastRun       *domain.Run
}

// Found reports whether a checklist was located and read.
func (r *StatusResponse) Found() bool {
	return r.SkipReason == ""
}

type HistoryRequest struct {
	ProjectRoot string
	Limit       int
}
