package trace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloud-advisor-chat/pkg/log"
)

// MaxEntries caps the in-memory trace. Once full, the oldest entry is
// evicted on each append: bounded memory wins over full history.
const MaxEntries = 20

// Entry is one human-readable progress line.
type Entry struct {
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Transport mirrors trace entries to a live channel for user-visible
// transparency. Implementations must tolerate slow or absent consumers.
type Transport interface {
	Emit(entry Entry) error
}

// Logger is a bounded, append-only progress log. Safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	entries   []Entry
	transport Transport
	l         log.Logger
}

// New creates a trace logger mirroring to the given transport.
// transport may be nil; entries are then only kept in memory.
func New(transport Transport, l log.Logger) *Logger {
	return &Logger{
		entries:   make([]Entry, 0, MaxEntries),
		transport: transport,
		l:         l,
	}
}

// Log appends an entry and mirrors it to the live transport. Transport
// failures are logged and swallowed; tracing never fails the pipeline.
func (t *Logger) Log(action string, metadata map[string]interface{}) {
	entry := Entry{
		Timestamp: time.Now(),
		Action:    action,
		Metadata:  metadata,
	}

	t.mu.Lock()
	if len(t.entries) >= MaxEntries {
		t.entries = append(t.entries[1:], entry)
	} else {
		t.entries = append(t.entries, entry)
	}
	t.mu.Unlock()

	if t.transport != nil {
		if err := t.transport.Emit(entry); err != nil {
			t.l.Warnf(context.Background(), "trace: transport emit failed: %v", err)
		}
	}
}

// Entries returns a copy of the current entries, oldest first.
func (t *Logger) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Compressed returns the last limit entries formatted for compact UI
// display. It is a convenience for rendering, not an audit record.
func (t *Logger) Compressed(limit int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if limit <= 0 || limit > len(t.entries) {
		limit = len(t.entries)
	}

	out := make([]string, 0, limit)
	for _, e := range t.entries[len(t.entries)-limit:] {
		out = append(out, fmt.Sprintf("%s: %s", e.Timestamp.Format("15:04:05"), e.Action))
	}
	return out
}
