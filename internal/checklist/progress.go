package checklist

import "github.com/alexanderramin/waypoint/internal/domain"

// Calculate counts completed and total items. It is a pure function of the
// document text.
func Calculate(content string) domain.ProgressSnapshot {
	completed, total := 0, 0
	for _, item := range Items(content) {
		total++
		if item.Checked {
			completed++
		}
	}
	return domain.NewProgressSnapshot(completed, total)
}
