package localstore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"notectl/pkg/core"
)

// Watch emits an event whenever a mirror file matching pattern changes on
// disk, until ctx is done. Pattern is a doublestar glob matched against the
// file name ("*.json" catches both collections). Another process editing the
// mirror is the only writer we cannot see through the Store lock, which is
// exactly what this is for.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan core.Event, 16)
	go func() {
		defer close(events)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(ev.Name)
				if match, err := doublestar.Match(pattern, name); err != nil || !match {
					continue
				}
				out := core.Event{
					Type:      eventType(ev.Op),
					ID:        name,
					Timestamp: time.Now().Unix(),
				}
				select {
				case events <- out:
				default:
					s.logger.Debug("watch event dropped, slow consumer", "file", name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("watch error", "err", err)
			}
		}
	}()
	return events, nil
}

var _ core.Watchable = (*Store)(nil)

func eventType(op fsnotify.Op) core.EventType {
	switch {
	case op.Has(fsnotify.Create):
		return core.EventCreate
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return core.EventModify
	}
}
