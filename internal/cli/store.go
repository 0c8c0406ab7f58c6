// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/seed"
)

// NewInitCommand creates the init command.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed the store and apply the version guard",
		Long:  "Seed every missing collection with defaults. Reseeds the catalog and settings when the stored version differs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				return inv.out.Success(inv.boot, renderReport(inv.boot))
			})
		},
	}
}

// NewStatusCommand creates the status command.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Probe the store and the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				health := inv.app.Health(ctx)
				err := inv.out.Success(health, func(w io.Writer) {
					fmt.Fprintf(w, "status:\t%s\n", health.Status)
					fmt.Fprintf(w, "driver:\t%s\n", health.Driver)
					fmt.Fprintf(w, "version:\t%s\n", health.Version)
					for _, check := range health.Checks {
						state := "ok"
						if !check.OK {
							state = "FAIL " + check.Error
						}
						fmt.Fprintf(w, "check %s:\t%s\n", check.Name, state)
					}
				})
				if err != nil {
					return err
				}
				if health.Status != "ready" {
					return NewExitError(ExitFailure, "store degraded")
				}
				return nil
			})
		},
	}
}

// NewWipeCommand creates the wipe command.
func NewWipeCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Reset the store to factory data",
		Long:  "Remove users, products, cart, session and settings, then reseed. Orders are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitCommandError, "wipe is destructive, pass --yes to confirm")
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				report, err := inv.app.Seed.Wipe(ctx)
				if err != nil {
					return err
				}
				return inv.out.Success(report, renderReport(report))
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func renderReport(report *seed.Report) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "from version:\t%s\n", report.FromVersion)
		fmt.Fprintf(w, "upgraded:\t%t\n", report.Upgraded)
		seeded := strings.Join(report.Seeded, ", ")
		if seeded == "" {
			seeded = "-"
		}
		fmt.Fprintf(w, "seeded:\t%s\n", seeded)
	}
}
