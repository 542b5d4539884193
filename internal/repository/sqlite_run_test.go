package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/waypoint/internal/db"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTestRepo(t *testing.T) *SQLiteRunRepo {
	t.Helper()
	return NewSQLiteRunRepo(testutil.NewTestDB(t))
}

func TestRunRepo_CreateAndGetByID(t *testing.T) {
	repo := runTestRepo(t)
	ctx := context.Background()

	run := testutil.NewTestRun(
		testutil.WithLevel(domain.LevelNormal),
		testutil.WithFiles(
			testutil.NewTestRunFile("src/foo.py", domain.MutationChecked),
			testutil.NewTestRunFile("web/bar.ts", domain.MutationAppended),
			domain.RunFile{Path: "baz.go", Name: "baz.go", Mutation: domain.MutationFailed, Error: "permission denied"},
		),
	)
	run.Usage = 72
	run.TranscriptLines = 120
	require.NoError(t, repo.Create(ctx, run))

	fetched, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, fetched.ID)
	assert.Equal(t, "session-test", fetched.SessionID)
	assert.Equal(t, domain.LevelNormal, fetched.Level)
	assert.Equal(t, 72, fetched.Usage)
	assert.Equal(t, 120, fetched.TranscriptLines)
	assert.Equal(t, domain.SourceVCS, fetched.ChangeSource)
	assert.Equal(t, 3, fetched.ChangedCount)
	assert.Equal(t, 2, fetched.AppliedCount)
	assert.True(t, run.StartedAt.Equal(fetched.StartedAt))

	require.Len(t, fetched.Files, 3)
	assert.Equal(t, "foo.py", fetched.Files[0].Name)
	assert.Equal(t, domain.MutationAppended, fetched.Files[1].Mutation)
	assert.Equal(t, "permission denied", fetched.Files[2].Error)
}

func TestRunRepo_GetByID_NotFound(t *testing.T) {
	repo := runTestRepo(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunRepo_SkippedRunWithoutFiles(t *testing.T) {
	repo := runTestRepo(t)
	ctx := context.Background()

	run := testutil.NewTestRun(testutil.WithSkipReason("no changes detected"))
	run.ChecklistPath = ""
	require.NoError(t, repo.Create(ctx, run))

	fetched, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Skipped())
	assert.Empty(t, fetched.Files)
}

func TestRunRepo_ListRecent_NewestFirstAndScoped(t *testing.T) {
	repo := runTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	older := testutil.NewTestRun(testutil.WithStartedAt(base))
	newer := testutil.NewTestRun(testutil.WithStartedAt(base.Add(time.Hour)))
	other := testutil.NewTestRun(testutil.WithProjectRoot("/elsewhere"), testutil.WithStartedAt(base.Add(2*time.Hour)))
	for _, r := range []*domain.Run{older, newer, other} {
		require.NoError(t, repo.Create(ctx, r))
	}

	runs, err := repo.ListRecent(ctx, "/project", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)

	all, err := repo.ListRecent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, other.ID, all[0].ID)

	limited, err := repo.ListRecent(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRunRepo_Prune(t *testing.T) {
	repo := runTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 5; i++ {
		r := testutil.NewTestRun(
			testutil.WithStartedAt(base.Add(time.Duration(i)*time.Minute)),
			testutil.WithFiles(testutil.NewTestRunFile(fmt.Sprintf("f%d.go", i), domain.MutationAppended)),
		)
		require.NoError(t, repo.Create(ctx, r))
		ids = append(ids, r.ID)
	}
	untouched := testutil.NewTestRun(testutil.WithProjectRoot("/other"), testutil.WithStartedAt(base))
	require.NoError(t, repo.Create(ctx, untouched))

	removed, err := repo.Prune(ctx, "/project", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	runs, err := repo.ListRecent(ctx, "/project", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[4], runs[0].ID)
	assert.Equal(t, ids[3], runs[1].ID)

	_, err = repo.GetByID(ctx, untouched.ID)
	assert.NoError(t, err)
}

func TestRunRepo_CreateWithinTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: fmt.Errorf("disk full")}
	ctx := context.Background()

	run := testutil.NewTestRun(testutil.WithFiles(testutil.NewTestRunFile("a.go", domain.MutationChecked)))
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteRunRepo(tx).Create(ctx, run)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, err = NewSQLiteRunRepo(database).GetByID(ctx, run.ID)
	assert.ErrorIs(t, err, ErrNotFound, "run row must roll back with its files")
}
