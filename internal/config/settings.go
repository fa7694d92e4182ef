// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Settings is the decoded settings file. Pointer fields are nil when the
// attribute is absent so callers can tell "unset" from a zero value.
type Settings struct {
	LogLevel       string   `hcl:"log_level,optional"`
	LogFormat      string   `hcl:"log_format,optional"`
	Locale         string   `hcl:"locale,optional"`
	Translations   string   `hcl:"translations,optional"`
	Documents      []string `hcl:"documents,optional"`
	ClassCacheSize *int     `hcl:"class_cache_size,optional"`
	Color          *bool    `hcl:"color,optional"`
}

// Load reads and decodes the settings file at path.
func Load(path string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	s, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}
	s.resolvePaths(filepath.Dir(path))
	return s, nil
}

// Parse decodes settings from src. filename is used in diagnostics only and
// relative paths are kept as written.
func Parse(src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings: %w", diags)
	}
	s, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}

func decode(file *hcl.File) (*Settings, error) {
	var s Settings
	if diags := gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
		return nil, diags
	}
	return &s, nil
}

func (s *Settings) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	s.Translations = abs(s.Translations)
	for i, d := range s.Documents {
		s.Documents[i] = abs(d)
	}
}
