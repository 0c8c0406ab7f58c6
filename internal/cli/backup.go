// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/backup"
)

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var out, as string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write users, products and settings to a backup file",
		Long:  "Write users, products and settings to a backup file. Without --out the snapshot goes to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := snapshotFormat(as, out)
			if err != nil {
				return err
			}

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				snapshot, err := inv.app.Backup.Export(ctx)
				if err != nil {
					return err
				}

				if out == "" {
					return backup.Encode(cmd.OutOrStdout(), *snapshot, format)
				}

				if err := writeSnapshot(out, *snapshot, format); err != nil {
					return WrapExitError(ExitCommandError, "write backup", err)
				}

				summary := map[string]any{"file": out, "users": len(snapshot.Users), "products": len(snapshot.Products)}
				return inv.out.Success(summary, func(w io.Writer) {
					fmt.Fprintf(w, "exported:\t%s\n", out)
					fmt.Fprintf(w, "users:\t%d\n", len(snapshot.Users))
					fmt.Fprintf(w, "products:\t%d\n", len(snapshot.Products))
				})
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file")
	cmd.Flags().StringVar(&as, "as", "", "json or yaml (default from the file extension, else json)")
	return cmd
}

// NewImportCommand creates the import command.
func NewImportCommand(opts *RootOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore the sections present in a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := snapshotFormat(as, path)
			if err != nil {
				return err
			}

			snapshot, err := readSnapshot(path, format)
			if err != nil {
				return WrapExitError(ExitCommandError, "read backup", err)
			}

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				report, err := inv.app.Backup.Import(ctx, *snapshot)
				if err != nil {
					return err
				}
				return inv.out.Success(report, func(w io.Writer) {
					fmt.Fprintf(w, "users:\t%d\n", report.Users)
					fmt.Fprintf(w, "products:\t%d\n", report.Products)
					fmt.Fprintf(w, "settings:\t%t\n", report.Settings)
				})
			})
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "json or yaml (default from the file extension, else json)")
	return cmd
}

func snapshotFormat(as, path string) (backup.Format, error) {
	if as == "" {
		return backup.FormatFromPath(path), nil
	}
	format, err := backup.ParseFormat(as)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "invalid --as", err)
	}
	return format, nil
}

func writeSnapshot(path string, snapshot backup.Snapshot, format backup.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := backup.Encode(file, snapshot, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func readSnapshot(path string, format backup.Format) (*backup.Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return backup.Decode(file, format)
}
