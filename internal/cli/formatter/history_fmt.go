package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// FormatHistory renders recent runs as a table, newest first.
func FormatHistory(runs []*domain.Run, showProject bool) string {
	if len(runs) == 0 {
		return Dim("No runs recorded yet.") + "\n"
	}

	headers := []string{"ID", "WHEN", "LEVEL", "CHANGED", "APPLIED", "PROGRESS", "NOTE"}
	if showProject {
		headers = append(headers, "PROJECT")
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		note := ""
		if r.Skipped() {
			note = Dim(r.SkipReason)
		}
		row := []string{
			TruncID(r.ID),
			HumanTimestamp(r.StartedAt),
			LevelColor(r.Level).Render(r.Level.String()),
			fmt.Sprintf("%d", r.ChangedCount),
			fmt.Sprintf("%d", r.AppliedCount),
			fmt.Sprintf("%3d%%", r.Percent),
			note,
		}
		if showProject {
			row = append(row, Dim(r.ProjectRoot))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatRun renders one run with its per-file outcomes.
func FormatRun(r *domain.Run) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run       %s\n", r.ID))
	if r.SessionID != "" {
		b.WriteString(fmt.Sprintf("Session   %s\n", r.SessionID))
	}
	b.WriteString(fmt.Sprintf("Started   %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Project   %s\n", r.ProjectRoot))
	b.WriteString(fmt.Sprintf("Level     %s\n", LevelBadge(r.Level, r.Usage)))
	b.WriteString(fmt.Sprintf("Source    %s\n", r.ChangeSource))
	if r.Skipped() {
		b.WriteString(fmt.Sprintf("Skipped   %s\n", r.SkipReason))
		return RenderBox("Run", b.String())
	}
	b.WriteString(fmt.Sprintf("Checklist %s\n", RelPath(r.ProjectRoot, r.ChecklistPath)))
	b.WriteString(fmt.Sprintf("Progress  %d%%\n", r.Percent))
	if len(r.Files) > 0 {
		rows := make([][]string, 0, len(r.Files))
		for _, f := range r.Files {
			rows = append(rows, []string{f.Path, MutationPill(f.Mutation), f.Error})
		}
		b.WriteString("\n" + RenderTable([]string{"PATH", "RESULT", ""}, rows))
	}
	return RenderBox("Run", b.String())
}
