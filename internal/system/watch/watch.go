// Released under an MIT license. See LICENSE.

// Package watch re-runs a script each time its file is written.
package watch

import (
	"context"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long a burst of events must be quiet before the file is
// read again. Editors often write a file in several steps.
const Settle = 10 * time.Millisecond

// Run passes the contents of path to fn, then does so again every time the
// file changes, until ctx is done. Errors reading or watching the file go
// to fail.
func Run(ctx context.Context, path string, fn func(text string), fail func(error)) error {
	reread := func() {
		b, err := os.ReadFile(path)
		if err != nil {
			fail(err)

			return
		}

		fn(string(b))
	}

	reread()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = watcher.Add(path)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			drain(ctx, watcher.Events)
			reread()

			// Editors that save by renaming leave the old watch behind.
			if err := watcher.Add(path); err != nil {
				fail(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			fail(err)
		}
	}
}

// drain discards events until none arrive for Settle.
func drain(ctx context.Context, events <-chan fsnotify.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
		case <-time.After(Settle):
			return
		}
	}
}
