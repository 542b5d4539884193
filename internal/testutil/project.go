package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Project is an isolated project directory for end-to-end tests.
type Project struct {
	Root string
	t    *testing.T
}

// NewProject creates an empty project directory under t.TempDir().
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{Root: t.TempDir(), t: t}
}

// Path returns the absolute path of rel inside the project.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, rel)
}

// WriteFile writes content to rel, creating parent directories.
func (p *Project) WriteFile(rel, content string) string {
	p.t.Helper()
	path := p.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		p.t.Fatalf("creating directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		p.t.Fatalf("writing %s: %v", rel, err)
	}
	return path
}

// Age sets the modification time of rel to d in the past.
func (p *Project) Age(rel string, d time.Duration) {
	p.t.Helper()
	at := time.Now().Add(-d)
	if err := os.Chtimes(p.Path(rel), at, at); err != nil {
		p.t.Fatalf("aging %s: %v", rel, err)
	}
}

// ReadFile returns the content of rel.
func (p *Project) ReadFile(rel string) string {
	p.t.Helper()
	data, err := os.ReadFile(p.Path(rel))
	if err != nil {
		p.t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

// WriteTranscript writes a transcript with n lines at rel.
func (p *Project) WriteTranscript(rel string, n int) string {
	p.t.Helper()
	var b []byte
	for i := 0; i < n; i++ {
		b = append(b, "{\"role\":\"assistant\"}\n"...)
	}
	return p.WriteFile(rel, string(b))
}
