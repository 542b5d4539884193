package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/repository"
	"github.com/alexanderramin/waypoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_ListAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLiteRunRepo(database)
	ctx := context.Background()
	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	first := testutil.NewTestRun(testutil.WithStartedAt(base))
	second := testutil.NewTestRun(
		testutil.WithStartedAt(base.Add(time.Minute)),
		testutil.WithFiles(testutil.NewTestRunFile("src/a.go", domain.MutationChecked)),
	)
	require.NoError(t, runs.Create(ctx, first))
	require.NoError(t, runs.Create(ctx, second))

	svc := NewHistoryService(runs)
	list, err := svc.ListRecent(ctx, app.HistoryRequest{ProjectRoot: "/project", Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	got, err := svc.GetRun(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "a.go", got.Files[0].Name)

	_, err = svc.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
