package grid

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.csv")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 4)
	fw, err := NewFileWatcher(path, func(p string) { changed <- p })
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	fw.debounce = 10 * time.Millisecond
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fw.Run(ctx) }()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		abs, _ := filepath.Abs(path)
		if got != abs {
			t.Fatalf("changed path = %q, want %q", got, abs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestFileWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.json")
	fw, err := NewFileWatcher(path, func(string) {})
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	fw.schedule()
}
