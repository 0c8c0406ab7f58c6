// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/lookeasy/internal/platform/sec"
)

/*
TestPasswordHasher_RoundTrip verifies hashing is salted and verifiable.
*/
func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("cliente123")
	require.NoError(t, err)
	second, err := hasher.Hash("cliente123")
	require.NoError(t, err)

	assert.NotEqual(t, "cliente123", first)
	assert.NotEqual(t, first, second, "two digests of the same password must differ (salt)")
	assert.True(t, hasher.Check("cliente123", first))
	assert.False(t, hasher.Check("cliente124", first))
}

/*
TestNewPasswordHasher_ClampsCost keeps the cost inside bcrypt's accepted range.
*/
func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, sec.NewPasswordHasher(1).Cost)
	assert.Equal(t, bcrypt.MaxCost, sec.NewPasswordHasher(99).Cost)
}

/*
TestSecureToken checks length, uniqueness and hash matching.
*/
func TestSecureToken(t *testing.T) {
	a, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	b, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.True(t, sec.TokenMatches(a, sec.HashToken(a)))
	assert.False(t, sec.TokenMatches(b, sec.HashToken(a)))
}

/*
TestUserRole_Valid accepts only the two store roles.
*/
func TestUserRole_Valid(t *testing.T) {
	tests := []struct {
		role sec.UserRole
		want bool
	}{
		{sec.RoleAdmin, true},
		{sec.RoleCliente, true},
		{"moderator", false},
		{"", false},
		{"Admin", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Valid())
		})
	}
}
