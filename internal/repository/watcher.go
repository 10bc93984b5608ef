package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Reloader - источник снимка, который умеет перечитывать себя
type Reloader interface {
	Path() string
	Reload(ctx context.Context) error
}

// FileWatcher следит за файлом ассета и перечитывает снимок после серии изменений.
// Следим за каталогом: редакторы часто заменяют файл через rename.
type FileWatcher struct {
	source   Reloader
	logger   *logrus.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher
	target   string

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	reloads sync.WaitGroup
}

// NewFileWatcher создает FileWatcher
func NewFileWatcher(source Reloader, logger *logrus.Logger, debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	target, err := filepath.Abs(source.Path())
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve incidents file path: %w", err)
	}

	return &FileWatcher{
		source:   source,
		logger:   logger,
		debounce: debounce,
		watcher:  watcher,
		target:   target,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start начинает наблюдение. Не блокирует.
func (w *FileWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dir := filepath.Dir(w.target)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.running = true

	w.logger.WithField("path", w.target).Info("Watching incidents file for changes")
	go w.run(ctx)
	return nil
}

// Stop останавливает наблюдение и дожидается завершения горутин
func (w *FileWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	if w.timer != nil && w.timer.Stop() {
		w.reloads.Done()
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.reloads.Wait()

	if err := w.watcher.Close(); err != nil {
		w.logger.WithError(err).Error("Failed to close file watcher")
	}
	w.logger.Info("Stopped watching incidents file")
}

func (w *FileWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Error("File watcher error")
		}
	}
}

func (w *FileWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}

	w.logger.WithField("op", event.Op.String()).Debug("Incidents file changed")
	w.scheduleReload(ctx)
}

// scheduleReload откладывает перечитывание, пока изменения не прекратятся на debounce
func (w *FileWatcher) scheduleReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}

	if w.timer != nil && w.timer.Stop() {
		w.reloads.Done()
	}
	w.reloads.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.reloads.Done()
		w.reload(ctx)
	})
}

func (w *FileWatcher) reload(ctx context.Context) {
	log := w.logger.WithField("path", w.target)
	if err := w.source.Reload(ctx); err != nil {
		log.WithError(err).Warn("Failed to reload incidents, keeping previous snapshot")
		return
	}
	log.Info("Incidents reloaded")
}
