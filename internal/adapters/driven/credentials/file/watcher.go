package file

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

// Watcher signals external edits to the cookie jar file. It watches
// the jar's parent directory rather than the file itself, because
// Save replaces the jar by rename and editors commonly do the same,
// which would silently detach a file-level watch.
type Watcher struct {
	fsw     *fsnotify.Watcher
	jarPath string
	changes chan struct{}
	done    chan struct{}
}

// NewWatcher starts watching the jar held by the given store.
// The caller must Close the watcher when done with it.
func NewWatcher(store *Store) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create filesystem watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch credential directory: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		jarPath: store.Path(),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()

	return w, nil
}

// Changes returns a channel that receives a signal whenever the jar
// is created, modified, replaced or removed. Signals are coalesced:
// a burst of events leaves at most one pending signal, so a slow
// consumer never builds a backlog.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher and waits for its event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

// run forwards relevant filesystem events onto the changes channel.
func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.isJarEvent(event) {
				continue
			}
			logger.Debug("Cookie jar changed on disk (%s)", event.Op)
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Credential watcher error: %v", err)
		}
	}
}

// isJarEvent reports whether the event touches the jar file with an
// operation that can change its content. Chmod is ignored, as are the
// temporary files Save creates before renaming into place.
func (w *Watcher) isJarEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.jarPath {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename) ||
		event.Op.Has(fsnotify.Remove)
}
