package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"lsi/pkg/utils"
)

// debounceDelay coalesces bursts of filesystem events into one reload.
// External tools often write through intermediate states (truncate then
// append, or write to a temp file and rename), each of which fires its own
// event.
const debounceDelay = 100 * time.Millisecond

// Watch observes the backing file and delivers a signal on the returned
// channel after each settled burst of external changes. The channel is
// closed when ctx is cancelled or the watcher fails. The parent directory
// is watched rather than the file itself: editors that save via rename
// replace the inode, which would silently detach a file-level watch.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				utils.Log.Debug("file event", "op", ev.Op.String(), "name", ev.Name)
				if timer == nil {
					timer = time.NewTimer(debounceDelay)
					fire = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounceDelay)
				}

			case <-fire:
				timer = nil
				fire = nil
				// Drop the signal if the consumer hasn't drained the
				// previous one; the reload it triggers picks up all
				// changes anyway.
				select {
				case changes <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				utils.Log.Debug("watch error", "err", err)
			}
		}
	}()

	return changes, nil
}
