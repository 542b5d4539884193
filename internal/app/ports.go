package app

import (
	"context"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/estimator"
)

type TrackUseCase interface {
	Track(ctx context.Context, req TrackRequest) (*TrackResponse, error)
}

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type HistoryUseCase interface {
	ListRecent(ctx context.Context, req HistoryRequest) ([]*domain.Run, error)
	GetRun(ctx context.Context, id string) (*domain.Run, error)
}

// UsageEstimator reports context usage.
type UsageEstimator interface {
	Estimate() estimator.Estimate
}

// ChangeDetector reports recently changed paths.
type ChangeDetector interface {
	Detect(ctx context.Context) domain.Outcome[domain.ChangeSet]
}

// ChecklistLocator finds the checklist document.
type ChecklistLocator interface {
	Locate(ctx context.Context) domain.Outcome[string]
}

// Components are the per-project collaborators of one run.
type Components struct {
	Estimator UsageEstimator
	Detector  ChangeDetector
	Locator   ChecklistLocator
}
