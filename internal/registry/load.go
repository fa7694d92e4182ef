// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/uigraph/internal/ctxlog"
	"github.com/specialistvlad/uigraph/internal/fsutil"
	"github.com/specialistvlad/uigraph/internal/ir"
	"github.com/specialistvlad/uigraph/internal/validate"
)

// DocumentExtensions lists the file extensions LoadDir picks up.
var DocumentExtensions = []string{".ui", ".xml"}

// LoadFile reads the whole document at path, then loads it.
func (r *Registry) LoadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return r.Load(ctx, path, bytes.NewReader(data))
}

// Load parses and validates one document and registers the interface it
// declares. On error the registry is left unchanged.
func (r *Registry) Load(ctx context.Context, name string, src io.Reader) error {
	logger := ctxlog.FromContext(ctx)

	iface, err := ir.Parse(ctx, name, src, r.classes)
	if err != nil {
		return err
	}
	if err := validate.Interface(iface); err != nil {
		return err
	}
	if err := r.add(iface); err != nil {
		return err
	}

	logger.Debug("Registered interface.", "interface", iface.ID, "document", name, "objects", iface.Count())
	return nil
}

// LoadDir loads every document below dir in lexical order. It stops at the
// first failure; documents loaded before it stay registered.
func (r *Registry) LoadDir(ctx context.Context, dir string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading documents from path...", "path", dir)

	paths, err := fsutil.FindFilesByExtension(dir, DocumentExtensions...)
	if err != nil {
		logger.Error("Failed to walk documents directory", "path", dir, "error", err)
		return 0, err
	}
	if len(paths) == 0 {
		logger.Warn("No documents found in path", "path", dir)
		return 0, nil
	}

	return r.LoadPaths(ctx, paths)
}

// LoadPaths loads the given files, and every document below the given
// directories, in order. It stops at the first failure.
func (r *Registry) LoadPaths(ctx context.Context, paths []string) (int, error) {
	files, err := fsutil.ExpandPaths(paths, DocumentExtensions...)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, path := range files {
		if err := r.LoadFile(ctx, path); err != nil {
			return loaded, err
		}
		loaded++
	}

	ctxlog.FromContext(ctx).Info("Registry loaded successfully.", "interfaces_loaded", loaded)
	return loaded, nil
}
