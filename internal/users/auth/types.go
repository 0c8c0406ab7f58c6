// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/internal/users/session"
)

// # Inputs

// LoginInput holds one authentication attempt.
type LoginInput struct {
	Email string
	Senha string

	// Lembrar is the "remember me" checkbox. It is recorded in logs only,
	// the session lifetime is fixed.
	Lembrar bool
}

// RegisterInput holds the sign-up form.
type RegisterInput struct {
	Nome           string
	Email          string
	Senha          string
	ConfirmarSenha string
	Termos         bool
}

// ResetPasswordInput completes the forgot-password flow.
type ResetPasswordInput struct {
	Token          string
	NovaSenha      string
	ConfirmarSenha string
}

// # Results

// LoginResult is returned by a successful Login or Register.
type LoginResult struct {
	User    *account.User
	Session *session.Session

	// Redirect is the page the presentation layer should open next.
	Redirect string
}

// ResetRequestResult is the answer to a reset request.
//
// Token is only filled when the service is configured to expose it.
type ResetRequestResult struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
