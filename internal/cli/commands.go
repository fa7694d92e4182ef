// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/specialistvlad/uigraph/internal/app"
	"github.com/specialistvlad/uigraph/internal/render"
)

// idArgs requires an interface id followed by optional document paths.
func idArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}

func checkFormat(format string) error {
	if format != app.FormatText && format != app.FormatYAML {
		return usageError(fmt.Errorf("unknown output format %q: must be %s or %s", format, app.FormatText, app.FormatYAML))
	}
	return nil
}

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [PATH...]",
		Short: "Parse and validate documents",
		Long: `Parse and validate every document, printing the id of each interface.
PATH may be a document or a directory searched for *.ui and *.xml files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			n, err := a.LoadDocuments(cmd.Context(), args...)
			if err != nil {
				return failure(err)
			}
			out := cmd.OutOrStdout()
			for _, id := range a.Registry().IDs() {
				printf(out, "ok  %s\n", id)
			}
			printf(out, "%d interface(s) valid\n", n)
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [PATH...]",
		Short: "List the interfaces the documents declare",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			if _, err := a.LoadDocuments(cmd.Context(), args...); err != nil {
				return failure(err)
			}
			for _, id := range a.Registry().IDs() {
				iface, _ := a.Registry().Lookup(id)
				printf(cmd.OutOrStdout(), "%s\t%s\t%d objects\n", id, iface.Document, iface.Count())
			}
			return nil
		},
	}
}

func newBuildCommand(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "build ID [PATH...]",
		Short: "Build an interface and print the resulting object graph",
		Args:  idArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			if _, err := a.LoadDocuments(cmd.Context(), args[1:]...); err != nil {
				return failure(err)
			}
			if err := a.Render(cmd.Context(), cmd.OutOrStdout(), args[0], format); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", app.FormatText, "Output format: text or yaml.")
	return cmd
}

func newWatchCommand(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch ID [PATH...]",
		Short: "Rebuild an interface whenever its documents change",
		Args:  idArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			out, errW := cmd.OutOrStdout(), cmd.ErrOrStderr()
			err = a.Watch(cmd.Context(), args[0], args[1:], func(snap *render.Node, err error) {
				if err != nil {
					printf(errW, "build failed: %v\n", err)
					return
				}
				printf(out, "--- %s\n", args[0])
				if werr := a.Write(out, snap, format); werr != nil {
					printf(errW, "output failed: %v\n", werr)
				}
			})
			if err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", app.FormatText, "Output format: text or yaml.")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printf(cmd.OutOrStdout(), "uigraph %s\n", Version)
		},
	}
}
