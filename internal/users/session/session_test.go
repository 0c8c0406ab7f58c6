// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/internal/users/session"
)

var admin = &account.User{ID: 1, Nome: "Administrador", Email: "admin@lookeasy.com", Role: sec.RoleAdmin, Ativo: true}
var cliente = &account.User{ID: 2, Nome: "Cliente Teste", Email: "cliente@lookeasy.com", Role: sec.RoleCliente, Ativo: true}

func newManager() (*session.Manager, *clock.Manual, kv.Store) {
	store := kv.NewMemory()
	clk := clock.NewManual(time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC))
	return session.NewManager(store, clk, logger.Discard()), clk, store
}

/*
TestCreate_ProjectsUser verifies the stored identity and the fixed 24h lifetime.
*/
func TestCreate_ProjectsUser(t *testing.T) {
	ctx := context.Background()
	manager, clk, _ := newManager()

	created, err := manager.Create(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(24*time.Hour), created.ExpiresAt)

	current, ok, err := manager.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, session.Identity{ID: 1, Nome: "Administrador", Email: "admin@lookeasy.com", Role: sec.RoleAdmin}, current.User)

	isAdmin, err := manager.IsAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

/*
TestCreate_OverwritesSlot ensures a new login replaces the previous one.
*/
func TestCreate_OverwritesSlot(t *testing.T) {
	ctx := context.Background()
	manager, _, _ := newManager()

	_, err := manager.Create(ctx, admin)
	require.NoError(t, err)
	_, err = manager.Create(ctx, cliente)
	require.NoError(t, err)

	current, ok, err := manager.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, current.User.ID)

	isAdmin, err := manager.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

/*
TestCurrent_LazyExpiry checks that an expired session is purged and stays absent.
*/
func TestCurrent_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	manager, clk, store := newManager()

	_, err := manager.Create(ctx, cliente)
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)
	_, ok, err := manager.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "still valid exactly at expiresAt")

	clk.Advance(time.Second)
	for range 2 {
		current, ok, err := manager.Current(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, current)
	}

	_, found, err := store.Get(ctx, constants.KeySession)
	require.NoError(t, err)
	assert.False(t, found, "expired slot is purged on read")
}

/*
TestClearIfOwner_OnlyClearsMatchingUser verifies the password-reset revocation rule.
*/
func TestClearIfOwner_OnlyClearsMatchingUser(t *testing.T) {
	ctx := context.Background()
	manager, _, _ := newManager()

	_, err := manager.Create(ctx, cliente)
	require.NoError(t, err)

	require.NoError(t, manager.ClearIfOwner(ctx, admin.ID))
	loggedIn, err := manager.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	require.NoError(t, manager.ClearIfOwner(ctx, cliente.ID))
	loggedIn, err = manager.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	require.NoError(t, manager.Clear(ctx))
}
