// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the identity façade of the store.

It composes the account repository and the session manager behind input
validation. Presentation code calls it for login, registration, logout and
the forgot-password flow.

Architecture:

  - Service: Orchestrates Login, Register, Logout and password recovery.
  - ResetStore: The single pending reset request, token stored as SHA-256.
  - ResetNotifier: Delivery channel for reset tokens.

Every validation rule runs before any lookup, so callers always receive the
complete list of violations.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/platform/validate"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/internal/users/session"
)

// # Contracts & Types

// Options tunes the optional behavior of [Service].
type Options struct {
	// Limiter throttles Login attempts. Nil disables throttling.
	Limiter *rate.Limiter

	// Throttle persists the Limiter's bucket between processes. Nil keeps
	// the bucket in the Limiter itself.
	Throttle *ThrottleStore

	// Notifier delivers reset tokens. Defaults to a [LogNotifier].
	Notifier ResetNotifier

	// ExposeResetToken returns the raw reset token to the caller. Demo only.
	ExposeResetToken bool
}

// Service implements the authentication use cases.
type Service struct {
	accounts    *account.Repository
	sessions    *session.Manager
	resets      *ResetStore
	notifier    ResetNotifier
	limiter     *rate.Limiter
	throttle    *ThrottleStore
	exposeToken bool
	clock       clock.Clock
	logger      *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	accounts *account.Repository,
	sessions *session.Manager,
	resets *ResetStore,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Service {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}

	return &Service{
		accounts:    accounts,
		sessions:    sessions,
		resets:      resets,
		notifier:    notifier,
		limiter:     opts.Limiter,
		throttle:    opts.Throttle,
		exposeToken: opts.ExposeResetToken,
		clock:       clk,
		logger:      logger,
	}
}

// # Authentication Flow

/*
Login validates credentials and opens a session.

Description: A wrong password and an unknown email both yield
INVALID_CREDENTIALS. A deactivated account with the right password yields
ACCOUNT_DISABLED.

Parameters:
  - ctx: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: User, session and role-based redirect
  - error: VALIDATION_ERROR, RATE_LIMITED, INVALID_CREDENTIALS, ACCOUNT_DISABLED or STORAGE_FAILURE
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	v := &validate.Validator{}
	v.Email(FieldEmail, input.Email).
		Custom(FieldSenha, input.Senha == "", MsgSenhaObrigatoria)
	if err := v.Err(); err != nil {
		return nil, err
	}

	allowed, err := service.allowLogin(ctx)
	if err != nil {
		return nil, err
	}
	if !allowed {
		service.logger.Warn("login_throttled")
		return nil, apperr.RateLimited()
	}

	user, err := service.accounts.FindAnyByEmail(ctx, input.Email)
	if apperr.Is(err, apperr.CodeNotFound) {
		return nil, apperr.InvalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	// Password first so a disabled account is only revealed to its owner
	if !service.accounts.VerifyPassword(user, input.Senha) {
		service.logger.Info("login_rejected", slog.Int("user_id", user.ID))
		return nil, apperr.InvalidCredentials()
	}

	if !user.Ativo {
		service.logger.Info("login_account_disabled", slog.Int("user_id", user.ID))
		return nil, apperr.AccountDisabled()
	}

	current, err := service.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	service.logger.Info("login_succeeded", slog.Int("user_id", user.ID), slog.Bool("remember", input.Lembrar))
	return &LoginResult{User: user, Session: current, Redirect: redirectFor(user)}, nil
}

/*
Register enrolls a new customer and logs them in.

Description: Collects every form violation first. An email owned by an
active account is EMAIL_TAKEN. New accounts always get the "cliente" role.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *LoginResult: Created user and the new session
  - error: VALIDATION_ERROR, EMAIL_TAKEN or STORAGE_FAILURE
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*LoginResult, error) {
	v := &validate.Validator{}
	v.MinLen(FieldNome, input.Nome, MinNomeLength, MsgNomeCurto).
		Email(FieldEmail, input.Email).
		Custom(FieldSenha, len(input.Senha) < MinSenhaLength, MsgSenhaCurta).
		MaxBytes(FieldSenha, input.Senha, MaxSenhaBytes, MsgSenhaLonga).
		Custom(FieldConfirmarSenha, input.Senha != input.ConfirmarSenha, MsgSenhasDiferentes).
		Custom(FieldTermos, !input.Termos, MsgTermos)
	if err := v.Err(); err != nil {
		return nil, err
	}

	taken, err := service.accounts.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.EmailTaken()
	}

	user, err := service.accounts.Create(ctx, account.NewUser{
		Nome:  input.Nome,
		Email: input.Email,
		Senha: input.Senha,
		Role:  sec.RoleCliente,
	})
	if err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	current, err := service.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginResult{User: user, Session: current, Redirect: constants.RedirectStore}, nil
}

/*
CreateAccount registers an account on behalf of an administrator.

Description: Same form rules as Register without the confirmation and terms
fields. The role may be admin or cliente. No session is opened.

Returns:
  - *account.User: Created user
  - error: VALIDATION_ERROR, EMAIL_TAKEN or STORAGE_FAILURE
*/
func (service *Service) CreateAccount(ctx context.Context, input account.NewUser) (*account.User, error) {
	if input.Role == "" {
		input.Role = sec.RoleCliente
	}

	v := &validate.Validator{}
	v.MinLen(FieldNome, input.Nome, MinNomeLength, MsgNomeCurto).
		Email(FieldEmail, input.Email).
		Custom(FieldSenha, len(input.Senha) < MinSenhaLength, MsgSenhaCurta).
		MaxBytes(FieldSenha, input.Senha, MaxSenhaBytes, MsgSenhaLonga).
		Custom(FieldRole, !input.Role.Valid(), MsgRoleInvalido)
	if err := v.Err(); err != nil {
		return nil, err
	}

	taken, err := service.accounts.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.EmailTaken()
	}

	user, err := service.accounts.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth_service_create_account_failed: %w", err)
	}
	return user, nil
}

// Logout ends the current session. Logging out twice is not an error.
func (service *Service) Logout(ctx context.Context) error {
	if err := service.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	service.logger.Info("logout_succeeded")
	return nil
}

// # Session Queries

// CurrentUser returns the identity of the live session.
func (service *Service) CurrentUser(ctx context.Context) (*session.Identity, bool, error) {
	current, ok, err := service.sessions.Current(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	return &current.User, true, nil
}

// IsLoggedIn reports whether a live session exists.
func (service *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	return service.sessions.IsLoggedIn(ctx)
}

// IsAdmin reports whether the live session belongs to an administrator.
func (service *Service) IsAdmin(ctx context.Context) (bool, error) {
	return service.sessions.IsAdmin(ctx)
}

// # Password Recovery

/*
RequestPasswordReset initiates the forgot-password flow.

Description: Unknown and deactivated emails get the same answer as known
ones. For an active account a fresh token replaces any pending request and
is handed to the notifier.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - *ResetRequestResult: Generic message, plus the token when exposed
  - error: VALIDATION_ERROR or STORAGE_FAILURE
*/
func (service *Service) RequestPasswordReset(ctx context.Context, email string) (*ResetRequestResult, error) {
	v := &validate.Validator{}
	if err := v.Email(FieldEmail, email).Err(); err != nil {
		return nil, err
	}

	result := &ResetRequestResult{Message: MsgResetRequested}

	user, err := service.accounts.FindByEmail(ctx, email)
	if apperr.Is(err, apperr.CodeNotFound) {
		service.logger.Info("password_reset_unknown_email")
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	token, err := sec.GenerateSecureToken(constants.ResetTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_generate_reset_token_failed: %w", err)
	}

	expiresAt := service.clock.Now().Add(constants.ResetTokenTTL)
	request := ResetRequest{UserID: user.ID, TokenHash: sec.HashToken(token), ExpiresAt: expiresAt}
	if err := service.resets.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("auth_service_save_reset_token_failed: %w", err)
	}

	if err := service.notifier.NotifyPasswordReset(ctx, user, token, expiresAt); err != nil {
		return nil, fmt.Errorf("auth_service_notify_reset_failed: %w", err)
	}

	if service.exposeToken {
		result.Token = token
	}
	return result, nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Checks the form, then the pending request. An expired request is
purged on detection. On success the credential is replaced, the request is
consumed and the owner's session, if it is the current one, is closed.

Parameters:
  - ctx: context.Context
  - input: ResetPasswordInput

Returns:
  - string: Confirmation message
  - error: VALIDATION_ERROR, TOKEN_INVALID, NOT_FOUND or STORAGE_FAILURE
*/
func (service *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) (string, error) {
	v := &validate.Validator{}
	v.Required(FieldToken, input.Token, MsgTokenObrigatorio).
		Custom(FieldSenha, len(input.NovaSenha) < MinSenhaLength, MsgSenhaCurta).
		MaxBytes(FieldSenha, input.NovaSenha, MaxSenhaBytes, MsgSenhaLonga).
		Custom(FieldConfirmarSenha, input.NovaSenha != input.ConfirmarSenha, MsgSenhasDiferentes)
	if err := v.Err(); err != nil {
		return "", err
	}

	request, found, err := service.resets.Load(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperr.TokenInvalid()
	}

	if service.clock.Now().After(request.ExpiresAt) {
		if err := service.resets.Clear(ctx); err != nil {
			return "", err
		}
		service.logger.Info("password_reset_token_expired", slog.Int("user_id", request.UserID))
		return "", apperr.TokenInvalid()
	}

	if !sec.TokenMatches(input.Token, request.TokenHash) {
		return "", apperr.TokenInvalid()
	}

	if _, err := service.accounts.Update(ctx, request.UserID, account.Patch{Senha: &input.NovaSenha}); err != nil {
		return "", fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	if err := service.resets.Clear(ctx); err != nil {
		return "", err
	}

	if err := service.sessions.ClearIfOwner(ctx, request.UserID); err != nil {
		return "", fmt.Errorf("auth_service_reset_session_revoke_failed: %w", err)
	}

	service.logger.Info("password_reset_completed", slog.Int("user_id", request.UserID))
	return MsgResetDone, nil
}

// # Helpers

func redirectFor(user *account.User) string {
	if user.IsAdmin() {
		return constants.RedirectAdmin
	}
	return constants.RedirectStore
}


// allowLogin spends one throttle token at the current clock time.
func (service *Service) allowLogin(ctx context.Context) (bool, error) {
	if service.limiter == nil {
		return true, nil
	}

	now := service.clock.Now()
	if service.throttle == nil {
		return service.limiter.AllowN(now, 1), nil
	}
	return service.throttle.Allow(ctx, service.limiter.Limit(), service.limiter.Burst(), now)
}
