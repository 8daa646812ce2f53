package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog whenever catalog.yaml in the source directory is
// written, created or renamed into place. The directory must exist on the OS
// filesystem. Watch returns once the watcher is running; it stops when ctx is done.
func (s *Source) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}

	// The directory is watched rather than the file so that editors which
	// replace the file on save keep triggering events.
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	go s.watchFiles(ctx, watcher)

	slog.Info("Watching content catalog for changes", "dir", s.dir)
	return nil
}

func (s *Source) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		slog.Info("Content watcher stopped", "dir", s.dir)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			s.handleFileEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (s *Source) handleFileEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != FileName {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("Content file event", "event", event.Op.String(), "path", event.Name)
	if err := s.Reload(); err != nil {
		slog.Error("Failed to reload content catalog, keeping previous version", "error", err)
		return
	}
	slog.Info("Reloaded content catalog", "path", event.Name)
}
