// Package eventlog persists end-of-run records as newline-delimited JSON.
// The file is append-only and grows without bound across runs; every write
// opens, appends and closes it, so no handle outlives a call. All writes
// are best-effort: a failed append is dropped, never surfaced to the player.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FileName is the log file created under the log directory.
const FileName = "last_run.jsonl"

// Event names.
const (
	EventGameOver = "game_over"
	EventWin      = "win"
)

// Record is one end-of-run event line.
type Record struct {
	TS     int64  `json:"ts"` // Unix seconds
	Event  string `json:"event"`
	Reason string `json:"reason,omitempty"` // Present only for game_over
	Score  int    `json:"score"`
	Length int    `json:"length"`
	Speed  int    `json:"speed"`
}

// Logger appends run records to the log file. The zero value is disabled.
type Logger struct {
	dir    string
	logger *log.Logger
}

// New creates a logger writing under dir.
func New(dir string, logger *log.Logger) *Logger {
	return &Logger{dir: dir, logger: logger}
}

// Disabled returns a no-op logger.
func Disabled() *Logger {
	return &Logger{}
}

// Path returns the log file path, or "" for a disabled logger.
func (l *Logger) Path() string {
	if l.dir == "" {
		return ""
	}
	return filepath.Join(l.dir, FileName)
}

// Append writes one record as a JSON line. Failures are swallowed.
func (l *Logger) Append(rec Record) {
	if l.dir == "" {
		return
	}
	if err := l.append(rec); err != nil && l.logger != nil {
		l.logger.Debug("eventlog: append dropped", "err", err)
	}
}

func (l *Logger) append(rec Record) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("eventlog: cannot create directory %s: %w", l.dir, err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("eventlog: cannot marshal record: %w", err)
	}

	f, err := os.OpenFile(l.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("eventlog: cannot open %s: %w", l.Path(), err)
	}
	_, err = f.Write(append(data, '\n'))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("eventlog: cannot write %s: %w", l.Path(), err)
	}
	return nil
}

// Records reads every well-formed record from the log file. A missing file
// or directory is not an error; malformed lines are skipped.
func (l *Logger) Records() ([]Record, error) {
	if l.dir == "" {
		return nil, nil
	}

	f, err := os.Open(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("eventlog: cannot open %s: %w", l.Path(), err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("eventlog: cannot read %s: %w", l.Path(), err)
	}
	return records, nil
}
