package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05"

// DefaultPath returns ~/.config/unistyle/unistyle.log.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "unistyle", "unistyle.log")
}

type LogLevel int

const (
	LevelDebug LogLevel = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

var levelTag = [...]string{"INFO", "WARN", "ERR "}

func (l LogLevel) tag() string {
	if l == LevelDebug {
		return "DBG "
	}
	if int(l) >= 0 && int(l) < len(levelTag) {
		return levelTag[l]
	}
	return "INFO"
}

type LogEntry struct {
	Time    time.Time
	Level   LogLevel
	Source  string
	Message string
}

// String formats e as a log file line without the trailing newline.
func (e LogEntry) String() string {
	msg := strings.ReplaceAll(e.Message, "\n", " ")
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] %s: %s", e.Time.Format(timeLayout), e.Level.tag(), e.Source, msg)
	}
	return fmt.Sprintf("%s [%s] %s", e.Time.Format(timeLayout), e.Level.tag(), msg)
}

// RingBuffer keeps the most recent entries in memory and appends every entry
// to an optional log file.
type RingBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
	head    int
	size    int
	cap     int
	file    *os.File
	debug   bool
	now     func() time.Time
}

// NewRingBuffer keeps capacity entries in memory. A zero or negative capacity
// selects 100.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 100
	}
	return &RingBuffer{
		entries: make([]LogEntry, capacity),
		cap:     capacity,
		now:     time.Now,
	}
}

// Open returns a ring buffer backed by the log file at path. Entries already
// in the file that are newer than retentionDays are loaded into memory.
func Open(path string, retentionDays int) (*RingBuffer, error) {
	if retentionDays <= 0 {
		retentionDays = 20
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "could not create log dir")
	}

	var kept []LogEntry
	if data, err := os.ReadFile(path); err == nil {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			e, ok := parseLogLine(line)
			if !ok || e.Time.Before(cutoff) {
				continue
			}
			kept = append(kept, e)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "could not open log file")
	}

	rb := NewRingBuffer(max(len(kept), 100))
	rb.file = f
	for _, e := range kept {
		rb.push(e)
	}
	return rb, nil
}

func (r *RingBuffer) SetDebug(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = on
}

func (r *RingBuffer) Add(e LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Skip debug entries unless debug mode is on
	if e.Level == LevelDebug && !r.debug {
		return
	}
	if e.Time.IsZero() {
		e.Time = r.now()
	}
	r.push(e)
	if r.file != nil {
		_, _ = r.file.WriteString(e.String() + "\n")
	}
}

func (r *RingBuffer) push(e LogEntry) {
	r.entries[r.head] = e
	r.head = (r.head + 1) % r.cap
	if r.size < r.cap {
		r.size++
	}
}

func (r *RingBuffer) logf(level LogLevel, source, format string, args ...any) {
	r.Add(LogEntry{Level: level, Source: source, Message: fmt.Sprintf(format, args...)})
}

func (r *RingBuffer) Debugf(source, format string, args ...any) {
	r.logf(LevelDebug, source, format, args...)
}

func (r *RingBuffer) Infof(source, format string, args ...any) {
	r.logf(LevelInfo, source, format, args...)
}

func (r *RingBuffer) Warnf(source, format string, args ...any) {
	r.logf(LevelWarn, source, format, args...)
}

func (r *RingBuffer) Errorf(source, format string, args ...any) {
	r.logf(LevelError, source, format, args...)
}

// Logf returns a printf-style func logging debug entries for source.
func (r *RingBuffer) Logf(source string) func(format string, args ...any) {
	return func(format string, args ...any) {
		r.Debugf(source, format, args...)
	}
}

// File returns the backing log file, or nil for a memory-only buffer.
func (r *RingBuffer) File() *os.File {
	return r.file
}

func (r *RingBuffer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *RingBuffer) Snapshot() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size == 0 {
		return nil
	}
	result := make([]LogEntry, r.size)
	start := (r.head - r.size + r.cap) % r.cap
	for i := 0; i < r.size; i++ {
		result[i] = r.entries[(start+i)%r.cap]
	}
	return result
}

func parseLogLine(line string) (LogEntry, bool) {
	// Format: 2006-01-02 15:04:05 [TAG ] source: message
	var e LogEntry
	if len(line) < 27 || line[20] != '[' || line[25] != ']' {
		return e, false
	}
	t, err := time.ParseInLocation(timeLayout, line[:19], time.Local)
	if err != nil {
		return e, false
	}
	e.Time = t

	switch strings.TrimSpace(line[21:25]) {
	case "WARN":
		e.Level = LevelWarn
	case "ERR":
		e.Level = LevelError
	case "DBG":
		e.Level = LevelDebug
	default:
		e.Level = LevelInfo
	}

	rest := strings.TrimPrefix(line[26:], " ")
	if i := strings.Index(rest, ": "); i >= 0 && !strings.Contains(rest[:i], " ") {
		e.Source = rest[:i]
		rest = rest[i+2:]
	}
	e.Message = rest
	return e, true
}
