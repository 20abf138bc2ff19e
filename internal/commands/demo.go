package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/akasprzok/datastory/internal/charts"
	"github.com/akasprzok/datastory/internal/logger"
	"github.com/akasprzok/datastory/internal/style"
)

type DemoCmd struct {
	Out    string `name:"out" help:"Directory to write the charts to." default:"." type:"path"`
	Format string `name:"format" help:"Image format." default:"png" enum:"png,jpg,tiff,svg,pdf,eps"`
	Seed   uint64 `name:"seed" help:"Seed for the demo data." default:"42"`
	Watch  bool   `name:"watch" short:"w" help:"Re-render whenever the style file changes."`
}

func (d *DemoCmd) Run(ctx *Context) error {
	paths, err := renderGallery(ctx.charter(), d.Out, d.Format, d.Seed, ctx.Log)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(ctx.stdout(), p)
	}
	if !d.Watch {
		return nil
	}
	if ctx.StylePath == "" {
		return errors.New("--watch needs a --style file")
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx.Log.With("path", ctx.StylePath).Info("watching style file")
	return watchStyle(sigCtx, ctx.StylePath, ctx.Log, func(cfg *style.Config) {
		if _, err := renderGallery(charts.New(cfg), d.Out, d.Format, d.Seed, ctx.Log); err != nil {
			ctx.Log.Error(err, "re-rendering gallery")
		}
	})
}

// watchStyle calls onChange with the reloaded style each time the file at
// path is written, until ctx is done. A style that fails to load is logged
// and skipped.
func watchStyle(ctx context.Context, path string, log *logger.Logger, onChange func(*style.Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	// Editors often replace the file on save, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	var debounce *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			cfg, err := style.Load(path)
			if err != nil {
				log.Error(err, "reloading style")
				continue
			}
			log.Info("style changed")
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watching style file")
		}
	}
}
