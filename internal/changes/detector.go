// Package changes detects which files were edited recently. Version
// control status is preferred; a filesystem recency scan is the fallback.
package changes

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/vcs"
)

// StatusSource is the subset of vcs.Repository the detector needs.
type StatusSource interface {
	IsWorkTree(ctx context.Context) bool
	ShortStatus(ctx context.Context) ([]vcs.StatusEntry, error)
}

// Detector produces a point-in-time change set for one project root.
type Detector struct {
	root     string
	status   StatusSource
	window   time.Duration
	limit    int
	exts     map[string]bool
	excluded map[string]bool
	now      func() time.Time
}

// NewDetector builds a Detector from cfg. status may be nil, in which case
// only the filesystem scan is used.
func NewDetector(cfg config.Config, status StatusSource) *Detector {
	d := &Detector{
		root:     cfg.ProjectRoot,
		status:   status,
		window:   cfg.RecencyWindow,
		limit:    cfg.ScanLimit,
		exts:     make(map[string]bool, len(cfg.SourceExtensions)),
		excluded: make(map[string]bool, len(cfg.ExcludedDirs)),
		now:      time.Now,
	}
	for _, ext := range cfg.SourceExtensions {
		d.exts[strings.ToLower(ext)] = true
	}
	for _, dir := range cfg.ExcludedDirs {
		d.excluded[dir] = true
	}
	return d
}

// Detect never returns an error. Inside a work tree the status result is
// final, even when empty. A status query failure falls through to the
// scan; a scan failure yields a skipped, empty change set.
func (d *Detector) Detect(ctx context.Context) domain.Outcome[domain.ChangeSet] {
	if d.status != nil && d.status.IsWorkTree(ctx) {
		entries, err := d.status.ShortStatus(ctx)
		if err == nil {
			return domain.Ok(domain.NewChangeSet(domain.SourceVCS, vcs.ModifiedPaths(entries)))
		}
	}

	paths, err := d.scanRecent()
	if err != nil {
		return domain.SkippedWith(domain.NewChangeSet(domain.SourceNone, nil), "change scan failed: "+err.Error())
	}
	return domain.Ok(domain.NewChangeSet(domain.SourceFilesystem, paths))
}

var errLimitReached = errors.New("scan limit reached")

// scanRecent walks the project for source files modified within the
// recency window. Unreadable entries below the root are skipped.
func (d *Detector) scanRecent() ([]string, error) {
	cutoff := d.now().Add(-d.window)
	var paths []string

	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == d.root {
				return err
			}
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			if path != d.root && d.excluded[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() || !d.exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().Before(cutoff) {
			return nil
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			rel = path
		}
		paths = append(paths, rel)
		if d.limit > 0 && len(paths) >= d.limit {
			return errLimitReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}
	return paths, nil
}
