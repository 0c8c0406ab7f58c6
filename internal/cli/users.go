// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/pkg/slice"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}
	cmd.AddCommand(
		newUsersListCommand(opts),
		newUsersCreateCommand(opts),
		newUsersDeactivateCommand(opts),
	)
	return cmd
}

func newUsersListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account, inactive included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				users, err := inv.app.Accounts.List(ctx)
				if err != nil {
					return err
				}
				return inv.out.Success(viewUsers(users...), renderUsers(users))
			})
		},
	}
}

func newUsersCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		input account.NewUser
		role  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an account without opening a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Role = sec.UserRole(role)
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				user, err := inv.app.Auth.CreateAccount(ctx, input)
				if err != nil {
					return err
				}
				return inv.out.Success(viewUsers(*user)[0], renderUsers([]account.User{*user}))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Nome, "nome", "", "display name")
	flags.StringVar(&input.Email, "email", "", "login email")
	flags.StringVar(&input.Senha, "senha", "", "password")
	flags.StringVar(&role, "role", string(sec.RoleCliente), "admin or cliente")
	return cmd
}

func newUsersDeactivateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Disable an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				user, err := inv.app.Accounts.Deactivate(ctx, id)
				if err != nil {
					return err
				}
				return inv.out.Success(viewUsers(*user)[0], renderUsers([]account.User{*user}))
			})
		},
	}
}

// renderUsers never prints the password digest.
func renderUsers(users []account.User) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNOME\tEMAIL\tROLE\tATIVO")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Nome, u.Email, u.Role, u.Ativo)
		}
	}
}

// userView is an account as printed by the command line, without the digest.
type userView struct {
	ID          int          `json:"id"`
	Nome        string       `json:"nome"`
	Email       string       `json:"email"`
	Role        sec.UserRole `json:"role"`
	Ativo       bool         `json:"ativo"`
	DataCriacao time.Time    `json:"dataCriacao"`
}

func viewUsers(users ...account.User) []userView {
	return slice.Map(users, func(u account.User) userView {
		return userView{ID: u.ID, Nome: u.Nome, Email: u.Email, Role: u.Role, Ativo: u.Ativo, DataCriacao: u.DataCriacao}
	})
}
