package domain

import "time"

// Run is one recorded invocation of the progress hook.
type Run struct {
	ID              string
	SessionID       string
	ProjectRoot     string
	ChecklistPath   string
	Level           ResourceLevel
	Usage           int
	TranscriptLines int
	ChangeSource    ChangeSource
	ChangedCount    int
	AppliedCount    int
	Percent         int
	SkipReason      string
	StartedAt       time.Time
	Files           []RunFile
}

// Skipped reports whether the run stopped before updating a checklist.
func (r *Run) Skipped() bool {
	return r.SkipReason != ""
}

// RunFile is the outcome of applying one changed file to the checklist.
type RunFile struct {
	Path     string
	Name     string
	Mutation Mutation
	Error    string
}
