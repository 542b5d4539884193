package checklist

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TASKS.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0640))
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteDocument_ReplacesContentAndKeepsMode(t *testing.T) {
	path := writeDoc(t, "old\n")

	require.NoError(t, WriteDocument(path, "new\n"))
	assert.Equal(t, "new\n", readDoc(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteDocument_MissingDirectoryFails(t *testing.T) {
	err := WriteDocument(filepath.Join(t.TempDir(), "nope", "TASKS.md"), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp checklist")
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "TASKS.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUpdateFile_ChecksItemOnDisk(t *testing.T) {
	path := writeDoc(t, "- [ ] foo.py\n")

	result := UpdateFile(path, domain.LevelFull, "src/pkg/foo.py", ts)
	assert.Equal(t, domain.MutationChecked, result.Mutation)
	assert.Equal(t, "foo.py", result.Name)
	assert.Equal(t, "src/pkg/foo.py", result.Path)
	assert.Empty(t, result.Error)
	assert.Equal(t, "- [x] foo.py (2026-10-18 14:03:00)\n", readDoc(t, path))
}

func TestUpdateFile_UnchangedDoesNotRewrite(t *testing.T) {
	path := writeDoc(t, "- [ ] foo.py\n")
	before, err := os.Stat(path)
	require.NoError(t, err)

	result := UpdateFile(path, domain.LevelMinimal, "foo.py", ts)
	assert.Equal(t, domain.MutationUnchanged, result.Mutation)
	assert.Equal(t, "- [ ] foo.py\n", readDoc(t, path))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestUpdateFile_ReadFailureIsReported(t *testing.T) {
	result := UpdateFile(filepath.Join(t.TempDir(), "missing.md"), domain.LevelFull, "foo.py", ts)
	assert.Equal(t, domain.MutationFailed, result.Mutation)
	assert.Contains(t, result.Error, "reading checklist")
}

func TestRecordProgress(t *testing.T) {
	path := writeDoc(t, "- [x] a\n- [ ] b\n")

	snapshot, err := RecordProgress(path, ts)
	require.NoError(t, err)
	assert.Equal(t, 50, snapshot.Percent)
	assert.Contains(t, readDoc(t, path), "_Progress: 50% complete_")

	s, err := Snapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snapshot, s)
}

func TestRecordProgress_MissingFile(t *testing.T) {
	_, err := RecordProgress(filepath.Join(t.TempDir(), "missing.md"), ts)
	assert.Error(t, err)
}
