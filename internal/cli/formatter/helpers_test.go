package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2h ago", HumanTimestampFrom(now.Add(-2*time.Hour), now))

	old := now.Add(-72 * time.Hour)
	assert.Equal(t, old.Local().Format("Jan 2 15:04"), HumanTimestampFrom(old, now))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdefgh", stripANSI(TruncID("abcdefgh-1234")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRelPath(t *testing.T) {
	assert.Equal(t, "docs/TASKS.md", RelPath("/proj", "/proj/docs/TASKS.md"))
	assert.Equal(t, "/other/TASKS.md", RelPath("/proj", "/other/TASKS.md"))
	assert.Equal(t, "/x", RelPath("", "/x"))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 file", Plural(1, "file"))
	assert.Equal(t, "0 files", Plural(0, "file"))
	assert.Equal(t, "3 files", Plural(3, "file"))
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	out := stripANSI(RenderBox("status", "body"))
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "body")
}
