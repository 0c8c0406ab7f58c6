// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/users/auth"
)

// loginView is the printed outcome of login and register.
type loginView struct {
	User      userView  `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
	Redirect  string    `json:"redirect"`
}

func viewLogin(result *auth.LoginResult) loginView {
	return loginView{
		User:      viewUsers(*result.User)[0],
		ExpiresAt: result.Session.ExpiresAt,
		Redirect:  result.Redirect,
	}
}

func renderLogin(view loginView) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "logged in:\t%s <%s>\n", view.User.Nome, view.User.Email)
		fmt.Fprintf(w, "role:\t%s\n", view.User.Role)
		fmt.Fprintf(w, "expires:\t%s\n", view.ExpiresAt.Format(time.RFC3339))
		fmt.Fprintf(w, "redirect:\t%s\n", view.Redirect)
	}
}

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	var input auth.LoginInput

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				result, err := inv.app.Auth.Login(ctx, input)
				if err != nil {
					return err
				}
				view := viewLogin(result)
				return inv.out.Success(view, renderLogin(view))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Email, "email", "", "account email")
	flags.StringVar(&input.Senha, "senha", "", "password")
	flags.BoolVar(&input.Lembrar, "lembrar", false, "remember me")
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				if err := inv.app.Auth.Logout(ctx); err != nil {
					return err
				}
				return inv.out.Success(map[string]bool{"loggedIn": false}, func(w io.Writer) {
					fmt.Fprintln(w, "logged out")
				})
			})
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				identity, ok, err := inv.app.Auth.CurrentUser(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return apperr.Unauthenticated("Nenhuma sessão ativa")
				}
				return inv.out.Success(identity, func(w io.Writer) {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", identity.ID, identity.Nome, identity.Email, identity.Role)
				})
			})
		},
	}
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var input auth.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a cliente account and log it in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				result, err := inv.app.Auth.Register(ctx, input)
				if err != nil {
					return err
				}
				view := viewLogin(result)
				return inv.out.Success(view, renderLogin(view))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Nome, "nome", "", "display name")
	flags.StringVar(&input.Email, "email", "", "login email")
	flags.StringVar(&input.Senha, "senha", "", "password")
	flags.StringVar(&input.ConfirmarSenha, "confirmar", "", "password confirmation")
	flags.BoolVar(&input.Termos, "termos", false, "accept the terms of use")
	return cmd
}

// NewPasswordCommand creates the password command group.
func NewPasswordCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Forgot-password flow",
	}
	cmd.AddCommand(newPasswordForgotCommand(opts), newPasswordResetCommand(opts))
	return cmd
}

func newPasswordForgotCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot <email>",
		Short: "Issue a reset token for the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				result, err := inv.app.Auth.RequestPasswordReset(ctx, args[0])
				if err != nil {
					return err
				}
				return inv.out.Success(result, func(w io.Writer) {
					fmt.Fprintln(w, result.Message)
					if result.Token != "" {
						fmt.Fprintf(w, "token:\t%s\n", result.Token)
					}
				})
			})
		},
	}
}

func newPasswordResetCommand(opts *RootOptions) *cobra.Command {
	var input auth.ResetPasswordInput

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password with a reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				message, err := inv.app.Auth.ResetPassword(ctx, input)
				if err != nil {
					return err
				}
				return inv.out.Success(map[string]string{"message": message}, func(w io.Writer) {
					fmt.Fprintln(w, message)
				})
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Token, "token", "", "reset token")
	flags.StringVar(&input.NovaSenha, "senha", "", "new password")
	flags.StringVar(&input.ConfirmarSenha, "confirmar", "", "password confirmation")
	return cmd
}
