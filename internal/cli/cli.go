// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/specialistvlad/uigraph/internal/app"
	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/config"
)

// Version is the version reported by the version command.
var Version = "dev"

// options holds the persistent flags.
type options struct {
	configPath     string
	logLevel       string
	logFormat      string
	locale         string
	translations   string
	documents      []string
	classCacheSize int
	noColor        bool

	// modules replaces the core class modules when set.
	modules []classes.Module
}

// NewRootCommand creates the uigraph command tree. Results are written to
// the command's output and logs to its error stream.
func NewRootCommand(modules ...classes.Module) *cobra.Command {
	opts := &options{modules: modules}

	root := &cobra.Command{
		Use:   "uigraph",
		Short: "Build object graphs from declarative interface documents",
		Long: `uigraph loads interface documents, validates them and builds the
object graphs they describe.

A document declares one interface: a tree of objects with properties,
children, a layout and constraints. Objects can refer to each other by id,
including to objects declared later in the same document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to an HCL settings file.")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Logging level: debug, info, warn or error.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format: text or json.")
	pf.StringVar(&opts.locale, "locale", "", "Locale translatable values are translated into.")
	pf.StringVar(&opts.translations, "translations", "", "Path to a YAML translations file.")
	pf.StringArrayVar(&opts.documents, "docs", nil, "Document file or directory; repeatable.")
	pf.IntVar(&opts.classCacheSize, "class-cache-size", classes.DefaultCacheSize, "Size of the class lookup cache; 0 disables it.")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output.")

	root.AddCommand(
		newValidateCommand(opts),
		newListCommand(opts),
		newBuildCommand(opts),
		newWatchCommand(opts),
		newVersionCommand(),
	)
	return root
}

// config merges the settings file and the flags. Flags given explicitly win.
func (o *options) config(cmd *cobra.Command) (*app.Config, error) {
	cfg := app.Config{
		LogLevel:       o.logLevel,
		LogFormat:      o.logFormat,
		Locale:         o.locale,
		Translations:   o.translations,
		ClassCacheSize: o.classCacheSize,
		Color:          !color.NoColor,
	}

	changed := cmd.Flags().Changed
	if o.configPath != "" {
		s, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		if s.LogLevel != "" && !changed("log-level") {
			cfg.LogLevel = s.LogLevel
		}
		if s.LogFormat != "" && !changed("log-format") {
			cfg.LogFormat = s.LogFormat
		}
		if s.Locale != "" && !changed("locale") {
			cfg.Locale = s.Locale
		}
		if s.Translations != "" && !changed("translations") {
			cfg.Translations = s.Translations
		}
		if s.ClassCacheSize != nil && !changed("class-cache-size") {
			cfg.ClassCacheSize = *s.ClassCacheSize
		}
		if s.Color != nil {
			cfg.Color = *s.Color
		}
		cfg.Documents = append(cfg.Documents, s.Documents...)
	}
	cfg.Documents = append(cfg.Documents, o.documents...)
	if o.noColor {
		cfg.Color = false
	}

	return app.NewConfig(cfg)
}

// newApp creates the app for one command invocation.
func (o *options) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return nil, usageError(err)
	}
	a, err := app.NewApp(cmd.ErrOrStderr(), cfg, o.modules...)
	if err != nil {
		return nil, failure(err)
	}
	return a, nil
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
