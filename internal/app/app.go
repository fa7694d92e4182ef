// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/ctxlog"
	"github.com/specialistvlad/uigraph/internal/i18n"
	"github.com/specialistvlad/uigraph/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	classes    *classes.Registry
	translator i18n.Translator

	mu       sync.RWMutex
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, class registry and
// interface registry. Without modules the core modules are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...classes.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	translator, err := i18n.New(cfg.Locale, cfg.Translations)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	logger.Debug("Translator configured.", "locale", cfg.Locale, "translations", cfg.Translations)

	cls := classes.New(cfg.ClassCacheSize)
	if len(modules) == 0 {
		modules = coreModules
	}
	cls.RegisterModules(modules...)
	logger.Debug("All class modules registered.", "modules", len(modules), "classes", cls.Len())

	a := &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		classes:    cls,
		translator: translator,
	}
	a.registry = a.newRegistry()
	return a, nil
}

// Registry returns the interface registry.
func (a *App) Registry() *registry.Registry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.registry
}

// Classes returns the class registry.
func (a *App) Classes() *classes.Registry {
	return a.classes
}

func (a *App) newRegistry() *registry.Registry {
	return registry.New(a.classes, registry.WithTranslator(a.translator))
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
