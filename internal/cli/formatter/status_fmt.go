package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/app"
)

const (
	statusProgressBarWidth = 24
	statusPendingLimit     = 10
)

// FormatStatus renders the status dashboard for a project.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Project   %s\n", Bold(resp.ProjectRoot)))
	b.WriteString(fmt.Sprintf("Level     %s\n", LevelBadge(resp.Level, resp.Estimate.Usage)))

	if !resp.Found() {
		b.WriteString(fmt.Sprintf("Checklist %s\n", Dim(resp.SkipReason)))
	} else {
		b.WriteString(fmt.Sprintf("Checklist %s\n", Bold(RelPath(resp.ProjectRoot, resp.ChecklistPath))))
		b.WriteString(fmt.Sprintf("Progress  %s\n", RenderSnapshot(resp.Progress, statusProgressBarWidth)))

		if len(resp.Pending) > 0 {
			b.WriteString("\n" + Header("Pending") + "\n")
			for i, item := range resp.Pending {
				if i == statusPendingLimit {
					b.WriteString(Dim(fmt.Sprintf("  … %d more", len(resp.Pending)-statusPendingLimit)) + "\n")
					break
				}
				b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("○"), item.Label))
			}
		}
	}

	if resp.LastRun != nil {
		run := resp.LastRun
		b.WriteString("\n")
		summary := fmt.Sprintf("Last run  %s  %s", HumanTimestamp(run.StartedAt), LevelColor(run.Level).Render(run.Level.String()))
		if run.Skipped() {
			summary += Dim("  skipped: " + run.SkipReason)
		} else {
			summary += Dim(fmt.Sprintf("  %d/%d applied, %d%%", run.AppliedCount, run.ChangedCount, run.Percent))
		}
		b.WriteString(summary + "\n")
	}

	return RenderBox("Status", b.String())
}
