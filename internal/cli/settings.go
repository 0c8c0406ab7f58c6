// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/pkg/pointer"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the store settings",
	}
	cmd.AddCommand(newSettingsShowCommand(opts), newSettingsUpdateCommand(opts))
	return cmd
}

func newSettingsShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the settings document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				current, err := inv.app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				return inv.out.Success(current, renderSettings(current))
			})
		},
	}
}

func newSettingsUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		nome, email, telefone, endereco string
		manutencao                      bool
		estoqueMinimo                   int
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the given settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			patch := settings.Patch{
				Nome:           pointer.When(flags.Changed("nome"), nome),
				Email:          pointer.When(flags.Changed("email"), email),
				Telefone:       pointer.When(flags.Changed("telefone"), telefone),
				Endereco:       pointer.When(flags.Changed("endereco"), endereco),
				ModoManutencao: pointer.When(flags.Changed("manutencao"), manutencao),
				EstoqueMinimo:  pointer.When(flags.Changed("estoque-minimo"), estoqueMinimo),
			}

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				updated, err := inv.app.Settings.Update(ctx, patch)
				if err != nil {
					return err
				}
				return inv.out.Success(updated, renderSettings(updated))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&nome, "nome", "", "store name")
	flags.StringVar(&email, "email", "", "contact email")
	flags.StringVar(&telefone, "telefone", "", "contact phone")
	flags.StringVar(&endereco, "endereco", "", "address")
	flags.BoolVar(&manutencao, "manutencao", false, "maintenance mode")
	flags.IntVar(&estoqueMinimo, "estoque-minimo", 0, "low-stock threshold")
	return cmd
}

func renderSettings(s *settings.Settings) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "nome:\t%s\n", s.Empresa.Nome)
		fmt.Fprintf(w, "email:\t%s\n", s.Empresa.Email)
		fmt.Fprintf(w, "telefone:\t%s\n", s.Empresa.Telefone)
		fmt.Fprintf(w, "endereco:\t%s\n", s.Empresa.Endereco)
		fmt.Fprintf(w, "versao:\t%s\n", s.Sistema.Versao)
		fmt.Fprintf(w, "manutencao:\t%t\n", s.Sistema.ModoManutencao)
		fmt.Fprintf(w, "estoque minimo:\t%d\n", s.Sistema.EstoqueMinimo)
	}
}
