package pipeline

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch runs an initial batch pass, then re-runs the pipeline whenever files
// are created or renamed in the input directory. Event bursts (a bulk export
// drops many files at once) are coalesced with a debounce timer.
func (r *Runner) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(r.cfg.InputDir); err != nil {
		return err
	}

	if _, err := r.Run(ctx); err != nil {
		return err
	}

	debounce := time.Duration(r.cfg.WatchDebounceMS) * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	r.log.Info().Str("dir", r.cfg.InputDir).Msg("watching for new assets")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			r.log.Debug().Str("event", ev.String()).Msg("fs event")
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(debounce)
			pending = true

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Error().Err(err).Msg("watch error")

		case <-timer.C:
			pending = false
			if _, err := r.Run(ctx); err != nil {
				r.log.Error().Err(err).Msg("watch run failed")
			}
		}
	}
}
