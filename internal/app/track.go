package app

import (
	"time"

	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/estimator"
)

// Skip reasons shared by the tracking and status use cases.
const (
	SkipNoChanges   = "no changes detected"
	SkipNoChecklist = "no checklist found"
)

type TrackRequest struct {
	Config config.Config
	Now    *time.Time
}

// TrackResponse describes one hook run. SkipReason is set when the run
// stopped before touching a checklist.
type TrackResponse struct {
	RunID          string
	ProjectRoot    string
	Timestamp      string
	Estimate       estimator.Estimate
	Level          domain.ResourceLevel
	Changes        domain.ChangeSet
	ChangeNote     string
	ChecklistPath  string
	Files          []domain.RunFile
	Progress       domain.ProgressSnapshot
	RecordAppended bool
	SkipReason     string
	HistoryError   string
}

// AppliedCount is the number of files whose mutation changed the checklist.
func (r *TrackResponse) AppliedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Mutation.Applied() {
			n++
		}
	}
	return n
}

// FailedCount is the number of files whose update hit an I/O error.
func (r *TrackResponse) FailedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Mutation == domain.MutationFailed {
			n++
		}
	}
	return n
}

// Run converts the response into a history record.
func (r *TrackResponse) Run(sessionID string, startedAt time.Time) *domain.Run {
	return &domain.Run{
		ID:              r.RunID,
		SessionID:       sessionID,
		ProjectRoot:     r.ProjectRoot,
		ChecklistPath:   r.ChecklistPath,
		Level:           r.Level,
		Usage:           r.Estimate.Usage,
		TranscriptLines: r.Estimate.Lines,
		ChangeSource:    r.Changes.Source,
		ChangedCount:    len(r.Changes.Paths),
		AppliedCount:    r.AppliedCount(),
		Percent:         r.Progress.Percent,
		SkipReason:      r.SkipReason,
		StartedAt:       startedAt,
		Files:           r.Files,
	}
}
