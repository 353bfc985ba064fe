package commands

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce batches rapid-fire filesystem events into one re-extraction.
const watchDebounce = 500 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-extract when source documents change",
		Long: `Run an initial extraction, then watch the sources directory and re-run
the catalog whenever a source document is written or created. Stop with
Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd)
		},
	}
}

func runWatch(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial run before watching
	if _, err := cmdCtx.Engine.Run(nil); err != nil {
		return err
	}
	cmdCtx.Renderer.Successf("Watching %s for changes", cmdCtx.Cfg.SourcesDir)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cmdCtx.Cfg.SourcesDir); err != nil {
		return err
	}

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				cmdCtx.Logger.Debug("source changed, re-extracting", "file", event.Name)
				if _, err := cmdCtx.Engine.Run(nil); err != nil {
					cmdCtx.Logger.Error("extraction failed", "error", err)
					return
				}
				cmdCtx.Renderer.Successf("Re-extracted after change to %s", event.Name)
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Error("watcher error", "error", watchErr)
		}
	}
}
