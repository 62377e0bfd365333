package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/cardview/cmd/cardshot/internal/config"
)

// watchDelay coalesces the burst of events editors produce on save.
const watchDelay = 100 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render a card file whenever it changes",
		Long: `Render a card file, then watch it and render again after every save.
Errors in the file are printed and the previous image is kept.
Press Ctrl+C to stop.

The drawing tier is chosen from the platform in the first render;
changing the platform while watching has no effect.

Flags:
  -o, --output FILE  Output path (default: the input path with .png)`,
		Usage: "cardshot watch <file> [-o out.png]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	file, out, err := parseFileArgs("watch", args)
	if err != nil {
		return err
	}
	file = filepath.Clean(file)

	render := func() {
		res, err := config.Resolve(file)
		if err == nil {
			err = renderTo(res, out)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", file)
	return watchLoop(ctx, watcher.Events, watcher.Errors, file, watchDelay, render)
}

// watchLoop calls render once per burst of changes to target until ctx
// is done or the event channels close.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, delay time.Duration, render func()) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				pending = time.After(delay)
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-pending:
			pending = nil
			render()
		}
	}
}
