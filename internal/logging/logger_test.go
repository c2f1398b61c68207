package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func setupLogger(t *testing.T, level Level) (string, func()) {
	t.Helper()

	logDir := t.TempDir()
	if err := Initialize(logDir, level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	logPath := GetLogPath()
	if logPath == "" {
		t.Fatalf("GetLogPath returned empty path")
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			_ = Close()
			defaultLogger = nil
		})
	}
	t.Cleanup(cleanup)

	return logPath, cleanup
}

func TestInitializeAndLogWrites(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelInfo)
	defer cleanup()

	Info("hello %s", "world")
	cleanup()

	if !strings.HasPrefix(filepath.Base(logPath), "gridpad-") {
		t.Fatalf("unexpected log file name %q", logPath)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "INFO: hello world") {
		t.Fatalf("expected log line to contain message, got: %q", content)
	}
}

func TestSetEnabledDisablesLogging(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelDebug)
	defer cleanup()

	SetEnabled(false)
	Info("should not write")
	if got := Recent(10); len(got) != 0 {
		t.Fatalf("expected no history while disabled, got %d entries", len(got))
	}
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(strings.TrimSpace(string(data))) != 0 {
		t.Fatalf("expected no log output when disabled, got: %q", string(data))
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelWarn)
	defer cleanup()

	Info("info message")
	Warn("warn message")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "INFO: info message") {
		t.Fatalf("did not expect info log at warn level: %q", content)
	}
	if !strings.Contains(content, "WARN: warn message") {
		t.Fatalf("expected warn log, got: %q", content)
	}
}

func TestRecentKeepsNewestInOrder(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, LevelDebug)
	t.Cleanup(func() { defaultLogger = nil })

	for i := 0; i < DefaultHistory+5; i++ {
		Debug("line %d", i)
	}

	got := Recent(3)
	if len(got) != 3 {
		t.Fatalf("Recent(3) returned %d entries", len(got))
	}
	for i, want := range []int{DefaultHistory + 2, DefaultHistory + 3, DefaultHistory + 4} {
		if got[i].Message != fmt.Sprintf("line %d", want) {
			t.Fatalf("entry %d = %q, want line %d", i, got[i].Message, want)
		}
	}
	if all := Recent(DefaultHistory * 2); len(all) != DefaultHistory {
		t.Fatalf("Recent should cap at history size, got %d", len(all))
	}
	if Seq() != uint64(DefaultHistory+5) {
		t.Fatalf("Seq() = %d", Seq())
	}
}

func TestRecentBeforeWrap(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, LevelInfo)
	t.Cleanup(func() { defaultLogger = nil })

	Info("first")
	Info("second")

	got := Recent(10)
	if len(got) != 2 || got[0].Message != "first" || got[1].Message != "second" {
		t.Fatalf("unexpected history: %+v", got)
	}
	if !strings.Contains(got[1].Line(), "INFO: second") {
		t.Fatalf("Line() = %q", got[1].Line())
	}
	if !strings.Contains(buf.String(), "INFO: first") {
		t.Fatalf("writer did not receive output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
