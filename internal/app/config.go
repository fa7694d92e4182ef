// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Documents are markup files or directories searched for them.
	Documents []string

	LogFormat string
	LogLevel  string

	// Locale and Translations enable translation of translatable values.
	Locale       string
	Translations string

	// ClassCacheSize bounds the class lookup cache; 0 disables it.
	ClassCacheSize int
	Color          bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if cfg.ClassCacheSize < 0 {
		return nil, fmt.Errorf("class cache size must not be negative, got %d", cfg.ClassCacheSize)
	}
	if cfg.Translations != "" && cfg.Locale == "" {
		return nil, errors.New("translations are set but no locale is configured")
	}
	return &cfg, nil
}
