// Package history keeps a bounded, most-recent-first log of completed
// operations. Writing the log is best-effort: it must never fail or block the
// operation being recorded.
package history

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// DefaultMaxEntries caps the log; the oldest entries beyond the cap are
// silently dropped.
const DefaultMaxEntries = 50

// Entry is one recorded operation.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Filename  string    `json:"filename"`
	Summary   string    `json:"summary"`
}

// Log is an append-only activity log backed by a JSON file.
type Log struct {
	path string
	max  int
}

// Open returns a log backed by the file at path. The file is created on
// first append.
func Open(path string, maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{path: path, max: maxEntries}
}

// Append records an entry at the front of the log, dropping the oldest
// entries beyond the cap. Persistence failures are reported to the diagnostic
// logger only; they never surface to the caller.
func (l *Log) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entries, err := l.read()
	if err != nil {
		slog.Warn("activity log unreadable, starting fresh", "path", l.path, "error", err)
		entries = nil
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > l.max {
		entries = entries[:l.max]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		slog.Warn("activity log marshal failed", "error", err)
		return
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		slog.Warn("activity log write failed", "path", l.path, "error", err)
	}
}

// Entries returns the recorded operations, most recent first.
func (l *Log) Entries() ([]Entry, error) {
	return l.read()
}

func (l *Log) read() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
