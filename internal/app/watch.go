// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/uigraph/internal/registry"
	"github.com/specialistvlad/uigraph/internal/render"
)

// watchDebounce collapses the burst of events one save produces.
const watchDebounce = 150 * time.Millisecond

// BuildFunc receives the result of every build Watch performs.
type BuildFunc func(snap *render.Node, err error)

// Watch loads the documents and builds id, then reloads and rebuilds after
// every change to a document until ctx is done. Each reload starts from an
// empty registry; the app's registry is replaced only when the reload
// succeeds.
func (a *App) Watch(ctx context.Context, id string, extra []string, onBuild BuildFunc) error {
	ctx = a.withLogger(ctx)
	paths, err := a.documents(extra)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(paths)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	a.logger.Info("Watching documents.", "interface", id, "dirs", dirs)

	a.reload(ctx, id, paths, onBuild)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("Watch stopped.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isDocumentEvent(event) {
				continue
			}
			a.logger.Debug("Document changed.", "file", event.Name, "op", event.Op.String())
			pending = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("File watcher error.", "error", err)
		case <-pending:
			pending = nil
			a.reload(ctx, id, paths, onBuild)
		}
	}
}

func (a *App) reload(ctx context.Context, id string, paths []string, onBuild BuildFunc) {
	reg := a.newRegistry()
	if _, err := reg.LoadPaths(ctx, paths); err != nil {
		a.logger.Warn("Reload failed.", "error", err)
		onBuild(nil, err)
		return
	}
	root, err := reg.Build(ctx, id)
	if err != nil {
		onBuild(nil, err)
		return
	}
	snap := render.Snapshot(root)
	root.Destroy()

	a.mu.Lock()
	a.registry = reg
	a.mu.Unlock()
	onBuild(snap, nil)
}

// watchDirs lists the directories to watch. Files are watched through their
// parent directory so that editors replacing a file are still seen.
func watchDirs(paths []string) ([]string, error) {
	var dirs []string
	add := func(d string) {
		if !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			add(filepath.Dir(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return dirs, nil
}

func isDocumentEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	for _, ext := range registry.DocumentExtensions {
		if filepath.Ext(event.Name) == ext {
			return true
		}
	}
	return false
}
