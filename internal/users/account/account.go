// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account owns the User collection.

It stores identities, salted credential digests and the soft-deactivation flag.
Input validation and session handling live one layer up, in the auth package.

# Architecture

  - Entities: User, NewUser, Patch.
  - Invariant: no two active users share a case-folded email.
  - Lifecycle: users are never deleted, Ativo=false deactivates them.
*/
package account

import (
	"time"

	"github.com/taibuivan/lookeasy/internal/platform/sec"
)

// # Domain Entities

// User is a registered shopper or store administrator.
type User struct {
	ID    int    `json:"id" yaml:"id"`
	Nome  string `json:"nome" yaml:"nome"`
	Email string `json:"email" yaml:"email"`
	// Senha is the bcrypt digest of the password, never the password itself.
	Senha       string       `json:"senha" yaml:"senha"`
	Role        sec.UserRole `json:"role" yaml:"role"`
	Ativo       bool         `json:"ativo" yaml:"ativo"`
	DataCriacao time.Time    `json:"dataCriacao" yaml:"dataCriacao"`
}

// IsAdmin reports whether the user has back-office access.
func (u *User) IsAdmin() bool {
	return u.Role == sec.RoleAdmin
}

// NewUser holds the data required to enroll a user. Senha is the raw password.
type NewUser struct {
	Nome  string
	Email string
	Senha string
	Role  sec.UserRole
}

// Patch is a partial update. Nil fields are left unchanged.
// Senha is a raw password and is re-hashed before storage.
type Patch struct {
	Nome  *string
	Email *string
	Senha *string
	Role  *sec.UserRole
	Ativo *bool
}
