package grid

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce coalesces bursts of editor writes into one reload.
const WatchDebounce = 200 * time.Millisecond

// FileWatcher reports changes to a single data file. It watches the parent
// directory so that editors replacing the file via rename are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(path string)
	debounce time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// NewFileWatcher starts watching path. onChange runs on a timer goroutine.
func NewFileWatcher(path string, onChange func(path string)) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &FileWatcher{
		watcher:  w,
		path:     filepath.Clean(abs),
		onChange: onChange,
		debounce: WatchDebounce,
	}, nil
}

// Run processes events until ctx is done or the watcher is closed.
func (fw *FileWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if fw.matches(event) {
				fw.schedule()
			}
		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

func (fw *FileWatcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (fw *FileWatcher) schedule() {
	if fw.onChange == nil {
		return
	}
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return
	}
	if fw.timer == nil {
		fw.timer = time.AfterFunc(fw.debounce, fw.fire)
	} else {
		fw.timer.Reset(fw.debounce)
	}
}

func (fw *FileWatcher) fire() {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return
	}
	fw.timer = nil
	fw.mu.Unlock()

	fw.onChange(fw.path)
}

// Close stops the watcher and any pending notification.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		fw.mu.Lock()
		fw.closed = true
		if fw.timer != nil {
			fw.timer.Stop()
			fw.timer = nil
		}
		fw.mu.Unlock()
		err = fw.watcher.Close()
	})
	return err
}
