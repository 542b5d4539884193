package service

import (
	"context"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/repository"
)

type historyService struct {
	runs repository.RunRepo
}

func NewHistoryService(runs repository.RunRepo) HistoryService {
	return &historyService{runs: runs}
}

func (s *historyService) ListRecent(ctx context.Context, req app.HistoryRequest) ([]*domain.Run, error) {
	return s.runs.ListRecent(ctx, req.ProjectRoot, req.Limit)
}

func (s *historyService) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	return s.runs.GetByID(ctx, id)
}
