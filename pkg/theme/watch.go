package theme

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/logging"
)

// Update is one reload of a watched theme file. Err is set when the file
// failed to load; Theme is nil in that case.
type Update struct {
	Theme *Theme
	Err   error
}

// Watch loads the theme file at path and reloads it whenever it is written.
// The first update carries the current contents. The channel closes when
// ctx is done or the watcher fails.
//
// Updates arrive on the watcher's goroutine; hand them to the frame loop
// before applying them to animators.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	out := make(chan Update)
	send := func() bool {
		t, err := LoadFile(path)
		select {
		case out <- Update{Theme: t, Err: err}:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer errors.Recover("theme.Watch")
		defer close(out)
		defer watcher.Close()

		if !send() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				logging.Logger().Debug("theme file changed", "path", path, "op", event.Op.String())
				if !send() {
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Logger().Warn("theme watcher error", "path", path, "error", err)
			}
		}
	}()

	return out, nil
}
