package checklist

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/domain"
)

// FileLister lists files under a directory relative to the project root in
// a version-control-aware way. vcs.Repository implements it.
type FileLister interface {
	ListFiles(ctx context.Context, subdir string) ([]string, error)
}

// Locator finds the single checklist document for a project.
type Locator struct {
	root       string
	name       string
	activeDir  string
	candidates []string
	lister     FileLister
}

// NewLocator builds a Locator from cfg. lister may be nil; the active
// directory is then walked directly.
func NewLocator(cfg config.Config, lister FileLister) *Locator {
	return &Locator{
		root:       cfg.ProjectRoot,
		name:       cfg.ChecklistName,
		activeDir:  cfg.ActiveDir,
		candidates: cfg.CandidatePaths,
		lister:     lister,
	}
}

// Locate returns the absolute path of the checklist. The active directory
// is searched first and its first match wins, in listing order; when
// several checklists exist there the choice follows that order and is not
// otherwise stable. The fixed candidates are checked next, in priority
// order. Only existence as a regular file is checked.
func (l *Locator) Locate(ctx context.Context) domain.Outcome[string] {
	if path, ok := l.searchActiveDir(ctx); ok {
		return domain.Ok(path)
	}
	for _, candidate := range l.candidates {
		path := l.abs(candidate)
		if isRegularFile(path) {
			return domain.Ok(path)
		}
	}
	return domain.Skipped[string]("no checklist found")
}

func (l *Locator) searchActiveDir(ctx context.Context) (string, bool) {
	if l.activeDir == "" || l.name == "" {
		return "", false
	}
	dir := l.abs(l.activeDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}

	if l.lister != nil {
		rel := l.activeDir
		if filepath.IsAbs(rel) {
			if r, err := filepath.Rel(l.root, rel); err == nil {
				rel = r
			}
		}
		files, err := l.lister.ListFiles(ctx, rel)
		if err == nil {
			for _, f := range files {
				path := l.abs(f)
				if filepath.Base(f) == l.name && isRegularFile(path) {
					return path, true
				}
			}
			return "", false
		}
	}
	return l.walkActiveDir(dir)
}

var errFound = errors.New("found")

func (l *Locator) walkActiveDir(dir string) (string, bool) {
	var found string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry != nil && entry.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.IsDir() && entry.Name() == l.name && entry.Type().IsRegular() {
			found = path
			return errFound
		}
		return nil
	})
	if errors.Is(err, errFound) {
		return found, true
	}
	return "", false
}

func (l *Locator) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.root, path)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
