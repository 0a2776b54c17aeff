// Package watch reloads a story document when it changes on disk.
//
// Reloaded stories are delivered over a channel so the frame loop can drain
// them between updates; the engine itself is never touched from the watcher
// goroutine.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/vista"
)

// DefaultSettle is how long the file must stay quiet before it is reparsed.
// Editors often write a file in several steps.
const DefaultSettle = 150 * time.Millisecond

// Result is one reload attempt. Exactly one of Story and Err is set.
type Result struct {
	Story *vista.Story
	Err   error
}

// Watcher reparses a story file after it settles.
type Watcher struct {
	path   string
	settle time.Duration
	log    *slog.Logger
	out    chan Result
}

// New creates a watcher for path. settle <= 0 uses DefaultSettle; a nil
// logger uses slog.Default().
func New(path string, settle time.Duration, logger *slog.Logger) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:   filepath.Clean(path),
		settle: settle,
		log:    logger,
		out:    make(chan Result, 1),
	}
}

// Results is the channel reload results are sent on. It is closed when Run
// returns.
func (w *Watcher) Results() <-chan Result { return w.out }

// Run watches until ctx is cancelled. The parent directory is watched rather
// than the file so atomic rename-on-save is observed.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.out)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	w.log.Info("Watching story", "path", w.path)

	// Armed by the first relevant event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.settle)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", "path", w.path, "error", err)
		case <-timer.C:
			w.deliver(ctx, w.reload())
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) reload() Result {
	st, err := vista.LoadStoryFile(w.path)
	if err != nil {
		w.log.Warn("Story reload failed", "path", w.path, "error", err)
		return Result{Err: err}
	}
	w.log.Info("Story reloaded", "path", w.path, "scenes", len(st.Scenes))
	return Result{Story: st}
}

// deliver replaces any undrained result so the consumer always sees the
// latest version of the file.
func (w *Watcher) deliver(ctx context.Context, r Result) {
	select {
	case <-w.out:
	default:
	}
	select {
	case w.out <- r:
	case <-ctx.Done():
	}
}

// Drain returns the most recent pending result without blocking.
func Drain(ch <-chan Result) (Result, bool) {
	var (
		last Result
		got  bool
	)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return last, got
			}
			last, got = r, true
		default:
			return last, got
		}
	}
}
