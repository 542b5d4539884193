package vcs

import "strings"

// StatusEntry is one line of "git status --porcelain" output:
// two status characters, a space, then the path.
type StatusEntry struct {
	Index    byte
	Worktree byte
	Path     string
}

// Modified reports whether either status column carries the modified
// marker.
func (e StatusEntry) Modified() bool {
	return e.Index == 'M' || e.Worktree == 'M'
}

// ParseShortStatus parses short-format status output. Lines too short to
// hold a status code and path are ignored. The path is the trailing
// whitespace-separated token, so for renames it is the destination.
func ParseShortStatus(out string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 4 {
			continue
		}
		fields := strings.Fields(line[2:])
		if len(fields) == 0 {
			continue
		}
		entries = append(entries, StatusEntry{
			Index:    line[0],
			Worktree: line[1],
			Path:     strings.Trim(fields[len(fields)-1], `"`),
		})
	}
	return entries
}

// ModifiedPaths returns the paths of modified entries in order.
func ModifiedPaths(entries []StatusEntry) []string {
	var paths []string
	for _, e := range entries {
		if e.Modified() {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
