package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/app"
	"github.com/alexanderramin/waypoint/internal/domain"
)

const reportProgressBarWidth = 20

// NearLimitHint follows the near-limit warning in the hook report.
const NearLimitHint = "consider running /update-dev-docs before the session ends"

// FormatTrackReport renders the console summary of one hook run.
func FormatTrackReport(resp *app.TrackResponse) string {
	var b strings.Builder

	b.WriteString(LevelBadge(resp.Level, resp.Estimate.Usage))
	if resp.Estimate.FromTranscript {
		b.WriteString(Dim(fmt.Sprintf("  %d transcript lines", resp.Estimate.Lines)))
	}
	b.WriteString("\n")

	changed := Plural(len(resp.Changes.Paths), "changed file")
	if resp.Changes.Source != "" {
		changed += Dim(fmt.Sprintf(" via %s", resp.Changes.Source))
	}
	b.WriteString(changed + "\n")
	if resp.ChangeNote != "" {
		b.WriteString(StyleYellow.Render("  "+resp.ChangeNote) + "\n")
	}

	if resp.SkipReason != "" {
		b.WriteString(Dim(fmt.Sprintf("Skipped: %s", resp.SkipReason)) + "\n")
		b.WriteString(nearLimitWarning(resp.Level, resp.Estimate.Usage))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Checklist %s\n", Bold(RelPath(resp.ProjectRoot, resp.ChecklistPath))))
	if len(resp.Files) > 0 {
		rows := make([][]string, 0, len(resp.Files))
		for _, f := range resp.Files {
			note := ""
			if f.Error != "" {
				note = StyleRed.Render(f.Error)
			}
			rows = append(rows, []string{f.Name, MutationPill(f.Mutation), note})
		}
		b.WriteString(RenderTable([]string{"FILE", "RESULT", ""}, rows))
	}

	b.WriteString(RenderSnapshot(resp.Progress, reportProgressBarWidth))
	if resp.RecordAppended {
		b.WriteString(Dim(fmt.Sprintf("  recorded %s", resp.Timestamp)))
	}
	b.WriteString("\n")

	if resp.HistoryError != "" {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("history not saved: %s", resp.HistoryError)) + "\n")
	}
	b.WriteString(nearLimitWarning(resp.Level, resp.Estimate.Usage))
	return b.String()
}

// nearLimitWarning is empty until the session reaches the Light level.
func nearLimitWarning(level domain.ResourceLevel, usage int) string {
	if level < domain.LevelLight {
		return ""
	}
	return "\n" + StyleRed.Render(fmt.Sprintf("▲ context near limit (%d%%)", usage)) + "\n" +
		StyleYellow.Render("  "+NearLimitHint) + "\n"
}
