// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli is the lookeasy command line.

Every command opens the configured store, runs the startup bootstrap, performs
one operation and closes the store. The session slot lives in the store, so a
login made by one invocation is seen by the next one.
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/app"
	"github.com/taibuivan/lookeasy/internal/seed"
)

// Opener builds the application for one command run.
type Opener func(ctx context.Context, opts *RootOptions) (*app.App, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format  string // "json" | "text"
	EnvFile string
	Verbose bool

	open Opener
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. open is called once per command run.
func NewRootCommand(open Opener) *cobra.Command {
	cmd, _ := newRoot(open)
	return cmd
}

func newRoot(open Opener) (*cobra.Command, *RootOptions) {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "lookeasy",
		Short: "LookEasy store data layer",
		Long:  "Manage the LookEasy catalog, accounts, cart and orders kept in the key-value store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional .env file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		NewInitCommand(opts),
		NewStatusCommand(opts),
		NewWipeCommand(opts),
		NewProductsCommand(opts),
		NewUsersCommand(opts),
		NewLoginCommand(opts),
		NewLogoutCommand(opts),
		NewWhoamiCommand(opts),
		NewRegisterCommand(opts),
		NewPasswordCommand(opts),
		NewCartCommand(opts),
		NewCheckoutCommand(opts),
		NewOrdersCommand(opts),
		NewSettingsCommand(opts),
		NewExportCommand(opts),
		NewImportCommand(opts),
	)

	return cmd, opts
}

// Execute runs the command line with args and returns the process exit code.
// Failures are reported on stderr in the selected format.
func Execute(ctx context.Context, open Opener, args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRoot(open)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	format := opts.Format
	if !slices.Contains(ValidFormats, format) {
		format = "text"
	}
	WriteError(stderr, format, err)
	return GetExitCode(err)
}

// # Command Runtime

// invocation is what a command body works with.
type invocation struct {
	app  *app.App
	out  *Formatter
	boot *seed.Report
}

// run opens the app, bootstraps the store and hands both to fn.
func run(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, inv *invocation) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := opts.open(ctx, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			a.Logger.Error("store_close_failed", slog.Any("error", cerr))
		}
	}()

	report, err := a.Seed.Bootstrap(ctx)
	if err != nil {
		return err
	}

	return fn(ctx, &invocation{
		app:  a,
		out:  &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
		boot: report,
	})
}
