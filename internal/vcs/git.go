// Package vcs provides typed access to the git CLI. Every command targets
// one repository directory via "git -C <dir>" and runs under a bounded
// timeout; a timeout surfaces as an ordinary error so callers can fall
// back to another strategy.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 5 * time.Second

// Repository runs git commands against a working directory.
type Repository struct {
	dir     string
	timeout time.Duration
	binary  string
}

// NewRepository returns a Repository targeting dir. A non-positive timeout
// selects DefaultTimeout.
func NewRepository(dir string, timeout time.Duration) *Repository {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Repository{dir: dir, timeout: timeout, binary: "git"}
}

func (r *Repository) Dir() string {
	return r.dir
}

// Run executes git with the given arguments and returns stdout. Stderr is
// included in the error on failure.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fullArgs := append([]string{"-C", r.dir}, args...)
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, r.binary, fullArgs...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("git %s in %s: timed out after %s", strings.Join(args, " "), r.dir, r.timeout)
		}
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), r.dir, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// IsWorkTree reports whether the directory is inside a git working tree.
// Any failure, including a missing git binary, reports false.
func (r *Repository) IsWorkTree(ctx context.Context) bool {
	out, err := r.Run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) == "true"
}

// ShortStatus returns the parsed porcelain status of the working tree.
func (r *Repository) ShortStatus(ctx context.Context) ([]StatusEntry, error) {
	out, err := r.Run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseShortStatus(out), nil
}

// ListFiles lists tracked and untracked-but-not-ignored files under
// subdir, relative to the repository directory, in git's output order.
func (r *Repository) ListFiles(ctx context.Context, subdir string) ([]string, error) {
	out, err := r.Run(ctx, "ls-files", "--cached", "--others", "--exclude-standard", "--", filepath.ToSlash(subdir))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, filepath.FromSlash(line))
		}
	}
	return files, nil
}
