// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/uigraph/internal/render"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// documents returns the configured document paths followed by extra.
func (a *App) documents(extra []string) ([]string, error) {
	paths := append(append([]string(nil), a.config.Documents...), extra...)
	if len(paths) == 0 {
		return nil, errors.New("no documents given: pass paths or set documents in the settings file")
	}
	return paths, nil
}

// LoadDocuments loads the configured documents and the extra paths into the
// registry. It returns the number of interfaces loaded.
func (a *App) LoadDocuments(ctx context.Context, extra ...string) (int, error) {
	ctx = a.withLogger(ctx)
	paths, err := a.documents(extra)
	if err != nil {
		return 0, err
	}
	a.logger.Debug("Loading documents...", "paths", paths)

	n, err := a.Registry().LoadPaths(ctx, paths)
	if err != nil {
		return n, fmt.Errorf("failed to load documents: %w", err)
	}
	return n, nil
}

// Snapshot builds the interface id and describes the result.
func (a *App) Snapshot(ctx context.Context, id string) (*render.Node, error) {
	ctx = a.withLogger(ctx)
	root, err := a.Registry().Build(ctx, id)
	if err != nil {
		return nil, err
	}
	defer root.Destroy()
	return render.Snapshot(root), nil
}

// Render builds the interface id and prints it to w in the given format.
func (a *App) Render(ctx context.Context, w io.Writer, id, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	snap, err := a.Snapshot(ctx, id)
	if err != nil {
		return err
	}
	return a.Write(w, snap, format)
}

// Write prints snap to w in the given format.
func (a *App) Write(w io.Writer, snap *render.Node, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == FormatYAML {
		return render.YAML(w, snap)
	}
	return render.Text(w, snap, a.config.Color)
}

func checkFormat(format string) error {
	switch format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: must be %s or %s", format, FormatText, FormatYAML)
	}
}
