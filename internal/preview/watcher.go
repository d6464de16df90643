package preview

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// DocumentExtensions are the file extensions treated as tree documents.
var DocumentExtensions = []string{".yaml", ".yml", ".json"}

// WatcherConfig configures the document watcher.
type WatcherConfig struct {
	// Dir is the directory to watch.
	Dir string

	// Interval is the polling interval.
	Interval time.Duration
}

// Watcher polls a directory and reports when tree documents are added,
// modified or removed.
type Watcher struct {
	config     WatcherConfig
	onChange   func(path string)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new document watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 250 * time.Millisecond
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for document changes.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.scan(false)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan walks the directory once. With report set, the first changed
// path of the pass is passed to the callback.
func (w *Watcher) scan(report bool) {
	seen := make(map[string]bool)
	var changed []string

	w.mu.Lock()
	callback := w.onChange
	filepath.WalkDir(w.config.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != w.config.Dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsDocument(p) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		seen[p] = true
		if last, ok := w.timestamps[p]; !ok || info.ModTime().After(last) {
			w.timestamps[p] = info.ModTime()
			changed = append(changed, p)
		}
		return nil
	})
	for p := range w.timestamps {
		if !seen[p] {
			delete(w.timestamps, p)
			changed = append(changed, p)
		}
	}
	w.mu.Unlock()

	if report && callback != nil && len(changed) > 0 {
		slices.Sort(changed)
		callback(changed[0])
	}
}

// IsDocument reports whether path has a tree document extension.
func IsDocument(path string) bool {
	return slices.Contains(DocumentExtensions, strings.ToLower(filepath.Ext(path)))
}
