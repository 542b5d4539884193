// Package estimator approximates how much of the session's working context
// has been consumed, using the transcript's line count as a proxy.
package estimator

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// DefaultUsage is reported whenever no transcript can be read.
const DefaultUsage = 30

// breakpoints maps transcript line counts onto usage estimates. Entries
// are ordered by descending line threshold; the first exceeded wins.
var breakpoints = []struct {
	minLines int
	usage    int
}{
	{200, 95},
	{150, 85},
	{100, 70},
	{50, 50},
}

// Estimate is a usage reading.
type Estimate struct {
	Usage          int
	Lines          int
	FromTranscript bool
}

// Level derives the resource level for this estimate.
func (e Estimate) Level() domain.ResourceLevel {
	return domain.LevelForUsage(e.Usage)
}

// Estimator reads a transcript file. An empty path means no transcript.
type Estimator struct {
	transcriptPath string
}

func New(transcriptPath string) *Estimator {
	return &Estimator{transcriptPath: transcriptPath}
}

// Estimate never fails: any read problem is reported as DefaultUsage.
func (e *Estimator) Estimate() Estimate {
	if e.transcriptPath == "" {
		return Estimate{Usage: DefaultUsage}
	}
	lines, err := countFileLines(e.transcriptPath)
	if err != nil {
		return Estimate{Usage: DefaultUsage}
	}
	return Estimate{Usage: UsageForLines(lines), Lines: lines, FromTranscript: true}
}

// UsageForLines is a monotonic step function of the line count.
func UsageForLines(lines int) int {
	for _, bp := range breakpoints {
		if lines > bp.minLines {
			return bp.usage
		}
	}
	return DefaultUsage
}

func countFileLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, errors.New("transcript path is a directory")
	}
	return countLines(f)
}

// countLines counts newline-terminated lines plus a trailing unterminated
// line. Transcript lines can be arbitrarily long, so it reads in chunks
// rather than tokenizing.
func countLines(r io.Reader) (int, error) {
	br := bufio.NewReaderSize(r, 32*1024)
	buf := make([]byte, 32*1024)
	count := 0
	seen := false
	var last byte
	for {
		n, err := br.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
			seen = true
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if seen && last != '\n' {
		count++
	}
	return count, nil
}
