package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"oes-harmonize/internal/dialectfile"
	"oes-harmonize/internal/registry"
)

// Watch reloads the registry whenever a dialect file in Config.DialectDir
// is written, created, removed or renamed. It returns when ctx is done.
func (s *Server) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.config.DialectDir); err != nil {
		return fmt.Errorf("watching %s: %w", s.config.DialectDir, err)
	}

	s.logger.Info("watching dialects", slog.String("dir", s.config.DialectDir))

	var timer *time.Timer

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(relevant) {
				continue
			}

			if !dialectfile.IsDialectFile(event.Name) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(s.config.ReloadDelay, s.reloadLogged)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			s.logger.Warn("dialect watcher", slog.Any("error", err))
		}
	}
}

func (s *Server) reloadLogged() {
	if err := s.Reload(); err != nil {
		attrs := []any{slog.Any("error", err)}

		var conflict *registry.SchemaConflictError
		if errors.As(err, &conflict) {
			attrs = append(attrs, slog.String("dialect", conflict.Dialect), slog.Any("codes", conflict.Diagnostics.Codes()))
		}

		s.logger.Error("reloading dialects, keeping previous registry", attrs...)

		return
	}

	s.logger.Info("dialects reloaded", slog.Any("dialects", s.Registry().Dialects()))
}
