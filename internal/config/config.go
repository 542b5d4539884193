package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// Config is the explicit configuration record handed to every component.
// Core packages never read the environment themselves.
type Config struct {
	ProjectRoot    string
	SessionID      string
	TranscriptPath string

	ChecklistName  string
	ActiveDir      string
	CandidatePaths []string

	CommandTimeout   time.Duration
	RecencyWindow    time.Duration
	ScanLimit        int
	SourceExtensions []string
	ExcludedDirs     []string

	DBPath      string
	HistoryKeep int
	LogRuns     bool
}

// HookInput is the optional JSON payload a hook runner writes to stdin.
type HookInput struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
}

// HistoryDisabled reports whether run history should not be persisted.
func (c Config) HistoryDisabled() bool {
	return c.DBPath == "" || strings.EqualFold(c.DBPath, "off")
}

// ResolveTranscript returns the transcript path made absolute against the
// project root.
func (c Config) ResolveTranscript() string {
	if c.TranscriptPath == "" || filepath.IsAbs(c.TranscriptPath) {
		return c.TranscriptPath
	}
	return filepath.Join(c.ProjectRoot, c.TranscriptPath)
}

// DefaultConfig returns a Config rooted at projectRoot with the built-in
// search paths and scan limits.
func DefaultConfig(projectRoot string) Config {
	return Config{
		ProjectRoot:    projectRoot,
		TranscriptPath: filepath.Join(".waypoint", "transcript.log"),
		ChecklistName:  "TASKS.md",
		ActiveDir:      filepath.Join("docs", "active"),
		CandidatePaths: []string{
			"TASKS.md",
			filepath.Join("docs", "TASKS.md"),
			filepath.Join(".waypoint", "TASKS.md"),
		},
		CommandTimeout: 5 * time.Second,
		RecencyWindow:  5 * time.Minute,
		ScanLimit:      20,
		SourceExtensions: []string{
			".go", ".py", ".js", ".jsx", ".ts", ".tsx", ".rs", ".java",
			".kt", ".rb", ".c", ".h", ".cc", ".cpp", ".hpp", ".cs",
			".swift", ".php", ".sh",
		},
		ExcludedDirs: []string{
			"node_modules", "vendor", ".git", ".hg", ".svn",
			"__pycache__", ".venv", "venv", ".cache", "tmp", "temp",
		},
		DBPath:      defaultDBPath(),
		HistoryKeep: 200,
	}
}

// LoadConfig builds a Config from environment variables layered over the
// optional hook input, falling back to defaults for unset or invalid
// values. Precedence for the project root: WAYPOINT_PROJECT_DIR, hook cwd,
// process working directory.
func LoadConfig(input HookInput) Config {
	wd, _ := os.Getwd()
	root := domain.CoalesceStr(os.Getenv("WAYPOINT_PROJECT_DIR"), input.Cwd, wd, ".")
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	cfg := DefaultConfig(root)
	cfg.SessionID = input.SessionID

	if v := os.Getenv("WAYPOINT_CHECKLIST_NAME"); v != "" {
		cfg.ChecklistName = v
	}
	if v := os.Getenv("WAYPOINT_ACTIVE_DIR"); v != "" {
		cfg.ActiveDir = v
	}
	cfg.TranscriptPath = domain.CoalesceStr(input.TranscriptPath, os.Getenv("WAYPOINT_TRANSCRIPT"), cfg.TranscriptPath)
	if v, ok := os.LookupEnv("WAYPOINT_DB"); ok {
		cfg.DBPath = v
	}
	if v := os.Getenv("WAYPOINT_HISTORY_KEEP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryKeep = n
		}
	}
	if v := os.Getenv("WAYPOINT_LOG_RUNS"); v != "" {
		cfg.LogRuns, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WAYPOINT_COMMAND_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CommandTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("WAYPOINT_RECENCY_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RecencyWindow = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("WAYPOINT_SCAN_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ScanLimit = n
		}
	}

	return cfg
}

// ReadHookInput decodes a hook payload. Empty or malformed input yields a
// zero HookInput; hook runners are not required to send anything.
func ReadHookInput(r io.Reader) HookInput {
	var input HookInput
	if r == nil {
		return input
	}
	data, err := io.ReadAll(r)
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		return input
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return HookInput{}
	}
	return input
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".waypoint", "waypoint.db")
}
