package modelconfig

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is used when fsnotify is unavailable.
const pollInterval = 500 * time.Millisecond

// Update is one reload result delivered by Watch.
type Update struct {
	Path   string
	Config Config
	Err    error
}

// Watch re-reads the config at path every time the file changes and sends
// the fresh result on the returned channel. Nothing is cached between
// updates. The channel is closed when ctx is cancelled.
// Uses fsnotify with a polling fallback.
func Watch(ctx context.Context, path string) <-chan Update {
	ch := make(chan Update, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Debug("fsnotify unavailable, polling model config", "path", path, "error", err)
			pollFile(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory so editors that replace the file by rename
		// are still seen.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			slog.Debug("cannot watch config directory, polling", "path", path, "error", err)
			pollFile(ctx, ch, path)
			return
		}

		watchEvents(ctx, ch, watcher, path)
	}()

	return ch
}

func watchEvents(ctx context.Context, ch chan<- Update, watcher *fsnotify.Watcher, path string) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !send(ctx, ch, reload(path)) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("model config watcher error", slog.String("path", path), slog.Any("error", err))
		}
	}
}

func pollFile(ctx context.Context, ch chan<- Update, path string) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(path); err == nil {
		lastMod, lastSize = info.ModTime(), info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			if !send(ctx, ch, reload(path)) {
				return
			}
		}
	}
}

func reload(path string) Update {
	cfg, err := Load(path)
	return Update{Path: path, Config: cfg, Err: err}
}

func send(ctx context.Context, ch chan<- Update, u Update) bool {
	select {
	case ch <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
