// Package watch reports entries appearing in or vanishing from the
// directories the sidebar has expanded.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"treedit/internal/errors"
	"treedit/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is a structural change inside a watched directory
type Change struct {
	Dir       string // Watched directory containing Path
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher monitors directories for entry changes using fsnotify
type Watcher struct {
	// Directories being watched
	directories []string

	// Channel delivering changes
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewFileError("failed to create fsnotify watcher", "", errors.WatchFailed, err)
	}

	return &Watcher{
		directories: []string{},
		changes:     make(chan Change, 32),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddDirectory starts watching dir. Adding a directory twice is harmless.
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.NewFileError("error accessing directory", dir, errors.DirectoryReadFailed, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("not a directory", dir, errors.InvalidPath, nil)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	for _, existing := range w.directories {
		if existing == dir {
			return nil
		}
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.NewFileError("failed to watch directory", dir, errors.WatchFailed, err)
	}
	w.directories = append(w.directories, dir)
	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// RemoveDirectory stops watching dir, typically after the sidebar
// collapses it.
func (w *Watcher) RemoveDirectory(dir string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for i, existing := range w.directories {
		if existing == dir {
			w.directories = append(w.directories[:i], w.directories[i+1:]...)
			if err := w.fsWatcher.Remove(dir); err != nil {
				log.LogWithFields(log.F("directory", dir), log.F("error", err)).Debug("Remove watch failed")
			}
			return
		}
	}
}

// Changes returns the channel that delivers structural changes. It is
// closed once the loop exits after Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the file watching process using fsnotify
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	stop := w.stopChan
	w.mutex.Unlock()

	go w.loop(stop)

	log.Debug("Watcher started.")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}) {
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			// Content writes and chmods do not change the tree
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}

			change := Change{
				Dir:       filepath.Dir(event.Name),
				Path:      event.Name,
				Op:        event.Op,
				Timestamp: time.Now(),
			}

			// A full channel drops the change. The sidebar catches up on the
			// next event in the same directory, since it reloads whole
			// directories.
			select {
			case w.changes <- change:
			case <-stop:
				return
			default:
				log.LogWithFields(log.F("path", event.Name)).Warn("Change channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

// Stop halts the watcher and closes the change channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false

	log.Debug("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// GetDirectories returns the list of directories being watched
func (w *Watcher) GetDirectories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirsCopy := make([]string, len(w.directories))
	copy(dirsCopy, w.directories)
	return dirsCopy
}
