package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// RunRepo persists hook runs together with their per-file outcomes.
type RunRepo interface {
	Create(ctx context.Context, r *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	ListRecent(ctx context.Context, projectRoot string, limit int) ([]*domain.Run, error)
	Prune(ctx context.Context, projectRoot string, keep int) (int, error)
}
