package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnoswap-labs/argmatch/internal/types"
)

// settleDelay groups the several write events editors emit for one save.
const settleDelay = 100 * time.Millisecond

// ReportFunc receives the outcomes of a case file re-run after a change.
type ReportFunc func(file string, outcomes []tt.Outcome, err error)

// Watcher re-runs case files when they are written.
type Watcher struct {
	runner  Runner
	logger  *zap.Logger
	report  ReportFunc
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	watching bool
	done     chan struct{}

	// Directories walked as a whole, and case files added on their own.
	trees map[string]bool
	files map[string]bool
}

// NewWatcher returns a Watcher reporting through report.
func NewWatcher(runner Runner, logger *zap.Logger, report ReportFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		runner:  runner,
		logger:  logger,
		report:  report,
		watcher: fw,
		done:    make(chan struct{}),
		trees:   make(map[string]bool),
		files:   make(map[string]bool),
	}, nil
}

// Add watches the directories below each path. For a file, its directory
// is watched but only that file is re-run.
func (w *Watcher) Add(paths ...string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := w.watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("error adding %s to watcher: %w", path, err)
			}
			w.mu.Lock()
			w.files[filepath.Clean(path)] = true
			w.mu.Unlock()
			continue
		}
		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() {
				return nil
			}
			if err := w.watcher.Add(p); err != nil {
				return err
			}
			w.mu.Lock()
			w.trees[filepath.Clean(p)] = true
			w.mu.Unlock()
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Start begins delivering events in the background.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watching {
		return errors.New("already watching")
	}
	w.watching = true
	go w.loop()
	return nil
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.watching {
		close(w.done)
		w.watching = false
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.wants(event.Name) {
		return
	}

	time.Sleep(settleDelay)
	outcomes, err := w.runner.RunFile(event.Name)
	if err != nil {
		w.logger.Error("Error processing file", zap.String("file", event.Name), zap.Error(err))
	} else {
		w.logger.Debug("case file re-run",
			zap.String("file", event.Name),
			zap.Int("cases", len(outcomes)),
			zap.Int("failed", tt.Failed(outcomes)))
	}
	if w.report != nil {
		w.report(event.Name, outcomes, err)
	}
}

// wants reports whether a change to file should trigger a re-run.
func (w *Watcher) wants(file string) bool {
	file = filepath.Clean(file)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[file] {
		return true
	}
	return w.trees[filepath.Dir(file)] && IsCaseFile(file)
}
