package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/checklist"
	"github.com/alexanderramin/waypoint/internal/db"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/repository"
	"github.com/google/uuid"
)

type progressService struct {
	uow        db.UnitOfWork
	components ComponentFactory
	logger     *slog.Logger
	observer   UseCaseObserver
}

// NewProgressService builds the hook use case. uow may be nil, which
// disables run history. components defaults to DefaultComponents and
// logger to a discarding logger.
func NewProgressService(
	uow db.UnitOfWork,
	components ComponentFactory,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) ProgressService {
	if components == nil {
		components = DefaultComponents
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &progressService{
		uow:        uow,
		components: components,
		logger:     logger,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Track runs one best-effort checklist update. The only error is an
// invalid request; every environment or I/O problem is reported in the
// response instead.
func (s *progressService) Track(ctx context.Context, req app.TrackRequest) (resp *app.TrackResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_root": req.Config.ProjectRoot}
	defer func() {
		if resp != nil {
			fields["level"] = resp.Level.String()
			fields["changed"] = len(resp.Changes.Paths)
			fields["applied"] = resp.AppliedCount()
			fields["percent"] = resp.Progress.Percent
			if resp.SkipReason != "" {
				fields["skip_reason"] = resp.SkipReason
			}
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "track-progress",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Config.ProjectRoot == "" {
		return nil, errors.New("project root is required")
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	parts := s.components(req.Config)
	resp = &app.TrackResponse{
		RunID:       uuid.New().String(),
		ProjectRoot: req.Config.ProjectRoot,
		Timestamp:   checklist.FormatTimestamp(now),
	}

	resp.Estimate = parts.Estimator.Estimate()
	resp.Level = resp.Estimate.Level()

	detected := parts.Detector.Detect(ctx)
	resp.Changes = detected.Value
	resp.ChangeNote = detected.Reason

	s.apply(ctx, parts, resp)
	s.record(ctx, req, resp, now.UTC())
	return resp, nil
}

// apply locates the checklist and runs the per-file state machine, then
// the record block and the final progress read.
func (s *progressService) apply(ctx context.Context, parts app.Components, resp *app.TrackResponse) {
	if resp.Changes.Empty() {
		resp.SkipReason = app.SkipNoChanges
		return
	}

	located := parts.Locator.Locate(ctx)
	if located.IsSkipped() {
		resp.SkipReason = domain.CoalesceStr(located.Reason, app.SkipNoChecklist)
		return
	}
	resp.ChecklistPath = located.Value

	for _, path := range resp.Changes.Paths {
		result := checklist.UpdateFile(resp.ChecklistPath, resp.Level, path, resp.Timestamp)
		if result.Mutation == domain.MutationFailed {
			s.logger.WarnContext(ctx, "checklist update failed",
				"checklist", resp.ChecklistPath, "file", path, "error", result.Error)
		}
		resp.Files = append(resp.Files, result)
	}

	if resp.Level.RecordsProgress() {
		if _, err := checklist.RecordProgress(resp.ChecklistPath, resp.Timestamp); err != nil {
			s.logger.WarnContext(ctx, "progress record failed", "checklist", resp.ChecklistPath, "error", err)
		} else {
			resp.RecordAppended = true
		}
	}

	snapshot, err := checklist.Snapshot(resp.ChecklistPath)
	if err != nil {
		s.logger.WarnContext(ctx, "reading final progress failed", "checklist", resp.ChecklistPath, "error", err)
		return
	}
	resp.Progress = snapshot
}

// record persists the run and prunes old history in one transaction.
// Failures are logged and surfaced on the response only.
func (s *progressService) record(ctx context.Context, req app.TrackRequest, resp *app.TrackResponse, startedAt time.Time) {
	if s.uow == nil {
		return
	}
	run := resp.Run(req.Config.SessionID, startedAt)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		runs := repository.NewSQLiteRunRepo(tx)
		if err := runs.Create(ctx, run); err != nil {
			return err
		}
		if req.Config.HistoryKeep > 0 {
			if _, err := runs.Prune(ctx, run.ProjectRoot, req.Config.HistoryKeep); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		resp.HistoryError = err.Error()
		s.logger.WarnContext(ctx, "recording run failed", "run_id", run.ID, "error", err)
	}
}
