package checklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// TimestampLayout formats run timestamps written into the checklist.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Apply computes the document after processing one changed file. name is
// the file's base name. The returned mutation is MutationUnchanged when the
// content is returned as is.
func Apply(content string, level domain.ResourceLevel, name, timestamp string) (string, domain.Mutation) {
	lines := splitLines(content)
	for i, line := range lines {
		item, ok := ParseItem(line)
		if !ok || item.Checked || !item.Matches(name) {
			continue
		}
		if !level.RecordsProgress() {
			// Light and Minimal never rewrite existing items.
			return content, domain.MutationUnchanged
		}
		item.Checked = true
		item.Label = fmt.Sprintf("%s (%s)", item.Label, timestamp)
		lines[i] = FormatItem(item) + lineEnding(line)
		return joinLines(lines, content), domain.MutationChecked
	}

	switch level {
	case domain.LevelFull, domain.LevelNormal:
		return appendLine(content, fmt.Sprintf("- [x] %s (%s)", name, timestamp)), domain.MutationAppended
	case domain.LevelLight:
		return appendLine(content, "- [x] "+name), domain.MutationAppended
	case domain.LevelMinimal:
		return appendLine(content, fmt.Sprintf("- [ ] %s (pending verification)", name)), domain.MutationPending
	default:
		return content, domain.MutationUnchanged
	}
}

// AppendRecord appends a progress record block carrying the timestamp and
// the completion percentage of content. Earlier blocks are kept.
func AppendRecord(content, timestamp string) (string, domain.ProgressSnapshot) {
	snapshot := Calculate(content)
	eol := documentEOL(content)
	block := strings.Join([]string{
		"",
		"---",
		"_Last updated: " + timestamp + "_",
		fmt.Sprintf("_Progress: %d%% complete_", snapshot.Percent),
		"",
	}, eol)
	return ensureTrailingNewline(content, eol) + block, snapshot
}

// appendLine adds line at the end using the document's line ending.
func appendLine(content, line string) string {
	eol := documentEOL(content)
	return ensureTrailingNewline(content, eol) + line + eol
}

func ensureTrailingNewline(content, eol string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + eol
}

// documentEOL is "\r\n" when the document's first line ends that way.
func documentEOL(content string) string {
	if i := strings.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}
	return ""
}

// joinLines reassembles lines produced by splitLines, keeping whether the
// original ended with a newline.
func joinLines(lines []string, original string) string {
	joined := strings.Join(lines, "\n")
	if strings.HasSuffix(original, "\n") {
		joined += "\n"
	}
	return joined
}
