package domain

import "strings"

// ChecklistItem is one checkbox line of a checklist document.
type ChecklistItem struct {
	// Prefix is the indentation and bullet preceding the checkbox marker.
	Prefix  string
	Checked bool
	Label   string
}

// Matches reports whether the item refers to the given file base name.
func (i ChecklistItem) Matches(name string) bool {
	return name != "" && strings.Contains(i.Label, name)
}

// ProgressSnapshot is derived from document text on every run.
type ProgressSnapshot struct {
	Completed int
	Total     int
	Percent   int
}

// NewProgressSnapshot computes floor(100*completed/total), 0 for an
// empty checklist.
func NewProgressSnapshot(completed, total int) ProgressSnapshot {
	s := ProgressSnapshot{Completed: completed, Total: total}
	if total > 0 {
		s.Percent = 100 * completed / total
	}
	return s
}

// Fraction returns the percentage as a value in [0,1] for renderers.
func (s ProgressSnapshot) Fraction() float64 {
	return float64(s.Percent) / 100
}

// ChangeSet is an ordered, de-duplicated list of changed paths.
type ChangeSet struct {
	Source ChangeSource
	Paths  []string
}

// NewChangeSet collapses duplicates while preserving first-seen order.
func NewChangeSet(source ChangeSource, paths []string) ChangeSet {
	seen := make(map[string]bool, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}
	return ChangeSet{Source: source, Paths: unique}
}

func (c ChangeSet) Empty() bool {
	return len(c.Paths) == 0
}
