package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bookmarklab/corral/internal/logger"
	"github.com/bookmarklab/corral/internal/sources/seedfile"
	"github.com/bookmarklab/corral/internal/store"
	"github.com/bookmarklab/corral/internal/utils"
)

// TreeImporter is the write surface the reloader needs from a store.
type TreeImporter interface {
	ReplaceTree(ctx context.Context, roots []*store.Node) error
}

// SeedReloader re-imports the seed file into the store, periodically and on
// demand, and optionally when the file changes on disk.
type SeedReloader struct {
	loader        *seedfile.Loader
	mapper        *seedfile.Mapper
	importer      TreeImporter
	logger        logger.Logger
	interval      time.Duration
	watchFile     bool
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeedReloader creates a new seed reloader
func NewSeedReloader(
	seedFile string,
	importer TreeImporter,
	log logger.Logger,
	interval time.Duration,
	watchFile bool,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        seedfile.NewLoader(seedFile),
		mapper:        seedfile.NewMapper(),
		importer:      importer,
		logger:        log,
		interval:      interval,
		watchFile:     watchFile,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start imports the seed file once, then begins the reload loop.
func (sr *SeedReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed import failed: %w", err)
	}

	var fileEvents chan struct{}
	if sr.watchFile {
		ch, err := sr.watch(ctx)
		if err != nil {
			sr.logger.Warn("seed file watch unavailable, relying on interval reloads",
				logger.Error(err))
		} else {
			fileEvents = ch
		}
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-fileEvents:
				sr.logger.Info("seed file changed on disk")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed file",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload loads the seed file and replaces the store tree with its content.
func (sr *SeedReloader) Reload(ctx context.Context) error {
	sr.logger.Info("importing seed file", logger.String("path", sr.loader.Path()))

	config, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	roots, err := sr.mapper.MapTree(config)
	if err != nil {
		return fmt.Errorf("failed to map seed file: %w", err)
	}

	if err := sr.importer.ReplaceTree(ctx, roots); err != nil {
		return fmt.Errorf("failed to import seed tree: %w", err)
	}

	sr.logger.Info("seed file imported",
		logger.Int("containers", len(roots)))
	return nil
}

// watch emits on the returned channel when the seed file is written or
// recreated. Editors often replace the file instead of writing in place, so
// the watch is on the parent directory filtered by name.
func (sr *SeedReloader) watch(ctx context.Context) (chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(sr.loader.Path())
	if err := watcher.Add(dir); err != nil {
		utils.Close(watcher)
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(sr.loader.Path())
	events := make(chan struct{}, 1)

	go func() {
		defer utils.MustClose(watcher, sr.logger)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				select {
				case events <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				sr.logger.Warn("seed file watcher error", logger.Error(err))
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
