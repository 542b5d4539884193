package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/checklist"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/repository"
)

type statusService struct {
	runs       repository.RunRepo
	components ComponentFactory
}

// NewStatusService builds the read-only status use case. runs may be nil
// when history is disabled.
func NewStatusService(runs repository.RunRepo, components ComponentFactory) StatusService {
	if components == nil {
		components = DefaultComponents
	}
	return &statusService{runs: runs, components: components}
}

func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error) {
	if req.Config.ProjectRoot == "" {
		return nil, errors.New("project root is required")
	}
	parts := s.components(req.Config)

	resp := &app.StatusResponse{ProjectRoot: req.Config.ProjectRoot}
	resp.Estimate = parts.Estimator.Estimate()
	resp.Level = resp.Estimate.Level()

	if s.runs != nil {
		recent, err := s.runs.ListRecent(ctx, req.Config.ProjectRoot, 1)
		if err != nil {
			return nil, fmt.Errorf("loading last run: %w", err)
		}
		if len(recent) > 0 {
			resp.LastRun = recent[0]
		}
	}

	located := parts.Locator.Locate(ctx)
	if located.IsSkipped() {
		resp.SkipReason = domain.CoalesceStr(located.Reason, app.SkipNoChecklist)
		return resp, nil
	}
	resp.ChecklistPath = located.Value

	content, err := checklist.ReadDocument(located.Value)
	if err != nil {
		resp.SkipReason = err.Error()
		return resp, nil
	}
	resp.Progress = checklist.Calculate(content)
	for _, item := range checklist.Items(content) {
		if !item.Checked {
			resp.Pending = append(resp.Pending, item)
		}
	}
	return resp, nil
}
