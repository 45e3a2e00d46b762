// Package logging provides the leveled slog logger used by the hopfield
// CLI and a JSONL event log for recall traces.
//
// Two outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - An EventLog writing one JSON object per recall event
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LevelTrace sits below Debug; at this level every neuron flip is logged.
const LevelTrace = slog.LevelDebug - 4

// Levels lists the accepted level names, lowest first.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ParseLevel maps a level name to a slog.Level, case-insensitive.
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a known level. The empty string is
// valid and means info.
func ValidLevel(s string) bool {
	if s == "" {
		return true
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels {
		if s == l {
			return true
		}
	}

	return s == "warning"
}

// NewLogger creates a leveled text slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// EventLog appends recall events to a JSONL file. It is safe for
// concurrent use, and a nil *EventLog is a valid no-op.
type EventLog struct {
	mu  sync.Mutex
	w   io.Writer
	c   io.Closer
	now func() time.Time
}

// OpenEventLog opens path for append. At info level or above it returns
// (nil, nil): no file is created and every method is a no-op.
func OpenEventLog(path, level string) (*EventLog, error) {
	if ParseLevel(level) > slog.LevelDebug || path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating event log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}

	return &EventLog{w: f, c: f, now: time.Now}, nil
}

// NewEventLog writes events to w. Used by tests and in-memory callers.
func NewEventLog(w io.Writer) *EventLog {
	return &EventLog{w: w, now: time.Now}
}

// Log writes event as a single JSON line with a "time" field added.
// The caller's map is not mutated.
func (el *EventLog) Log(event map[string]any) {
	if el == nil || el.w == nil {
		return
	}
	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = el.now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	el.mu.Lock()
	defer el.mu.Unlock()
	_, _ = el.w.Write(data)
}

// Close closes the underlying file, if any. Safe on a nil receiver.
func (el *EventLog) Close() error {
	if el == nil {
		return nil
	}
	el.mu.Lock()
	defer el.mu.Unlock()
	el.w = nil
	if el.c == nil {
		return nil
	}
	err := el.c.Close()
	el.c = nil

	return err
}
