package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level, defaulting to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Entry is one formatted log record kept for the console pane.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// Line renders the entry the same way it is written to the log file.
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] %s: %s", e.Time.Format("15:04:05.000"), e.Level.String(), e.Message)
}

// DefaultHistory is the number of entries retained for Recent.
const DefaultHistory = 200

// Logger provides leveled logging to a file plus a bounded in-memory history.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	enabled  bool
	filePath string

	history []Entry
	next    int
	full    bool
	seq     uint64
}

var defaultLogger *Logger

// Initialize sets up the default logger writing to a dated file under logDir.
func Initialize(logDir string, level Level) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("gridpad-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	defaultLogger = newLogger(file, level)
	defaultLogger.filePath = logPath
	return nil
}

// InitializeWriter sets up the default logger on an arbitrary writer.
// Headless commands use it to log to stderr.
func InitializeWriter(w io.Writer, level Level) {
	defaultLogger = newLogger(w, level)
}

func newLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		writer:  w,
		level:   level,
		enabled: true,
		history: make([]Entry, DefaultHistory),
	}
}

// SetEnabled enables or disables logging
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

func log(level Level, format string, args ...interface{}) {
	if defaultLogger == nil {
		return
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	if !defaultLogger.enabled || level < defaultLogger.level {
		return
	}

	entry := Entry{Time: time.Now(), Level: level, Message: fmt.Sprintf(format, args...)}
	defaultLogger.remember(entry)

	line := fmt.Sprintf("[%s] %s: %s\n", entry.Time.Format("2006-01-02 15:04:05.000"), level.String(), entry.Message)
	if defaultLogger.writer != nil {
		_, _ = defaultLogger.writer.Write([]byte(line))
	}
}

// remember stores entry in the ring buffer. Caller holds mu.
func (l *Logger) remember(entry Entry) {
	if len(l.history) == 0 {
		return
	}
	l.history[l.next] = entry
	l.next = (l.next + 1) % len(l.history)
	if l.next == 0 {
		l.full = true
	}
	l.seq++
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	log(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	log(LevelError, format, args...)
}

// WithError logs an error with context
func WithError(err error, context string) {
	if err != nil {
		log(LevelError, "%s: %v", context, err)
	}
}

// Recent returns up to n of the newest entries, oldest first.
func Recent(n int) []Entry {
	if defaultLogger == nil || n <= 0 {
		return nil
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	l := defaultLogger
	size := l.next
	if l.full {
		size = len(l.history)
	}
	if n > size {
		n = size
	}
	out := make([]Entry, 0, n)
	start := l.next - n
	if start < 0 {
		start += len(l.history)
	}
	for i := 0; i < n; i++ {
		out = append(out, l.history[(start+i)%len(l.history)])
	}
	return out
}

// Seq returns a counter that increases with every retained entry.
// The console pane compares it to skip re-rendering when nothing changed.
func Seq() uint64 {
	if defaultLogger == nil {
		return 0
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	return defaultLogger.seq
}

// Close closes the log file
func Close() error {
	if defaultLogger != nil && defaultLogger.writer != nil {
		if closer, ok := defaultLogger.writer.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	if defaultLogger != nil {
		return defaultLogger.filePath
	}
	return ""
}
