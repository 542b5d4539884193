package testutil

import (
	"path"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/google/uuid"
)

// RunOption customizes a test run.
type RunOption func(*domain.Run)

func WithProjectRoot(root string) RunOption {
	return func(r *domain.Run) {
		r.ProjectRoot = root
	}
}

func WithStartedAt(t time.Time) RunOption {
	return func(r *domain.Run) {
		r.StartedAt = t
	}
}

func WithLevel(l domain.ResourceLevel) RunOption {
	return func(r *domain.Run) {
		r.Level = l
	}
}

func WithSkipReason(reason string) RunOption {
	return func(r *domain.Run) {
		r.SkipReason = reason
	}
}

func WithFiles(files ...domain.RunFile) RunOption {
	return func(r *domain.Run) {
		r.Files = files
		r.ChangedCount = len(files)
		r.AppliedCount = 0
		for _, f := range files {
			if f.Mutation.Applied() {
				r.AppliedCount++
			}
		}
	}
}

// NewTestRun returns a completed Full-level run against /project.
func NewTestRun(opts ...RunOption) *domain.Run {
	r := &domain.Run{
		ID:            uuid.New().String(),
		SessionID:     "session-test",
		ProjectRoot:   "/project",
		ChecklistPath: "/project/TASKS.md",
		Level:         domain.LevelFull,
		Usage:         30,
		ChangeSource:  domain.SourceVCS,
		Percent:       50,
		StartedAt:     time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestRunFile builds a per-file outcome for p.
func NewTestRunFile(p string, mutation domain.Mutation) domain.RunFile {
	return domain.RunFile{Path: p, Name: path.Base(p), Mutation: mutation}
}
