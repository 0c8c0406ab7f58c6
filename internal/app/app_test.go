// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/app"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/config"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
	"github.com/taibuivan/lookeasy/internal/shop/cart"
	"github.com/taibuivan/lookeasy/internal/users/auth"
)

// failingStore answers every call with an infrastructure error.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("connection refused") }
func (failingStore) Remove(context.Context, string) error      { return errors.New("connection refused") }
func (failingStore) Close() error                              { return nil }

func wire(store kv.Store) *app.App {
	cfg := &config.Config{StoreDriver: config.DriverMemory, BcryptCost: 4}
	clk := clock.NewManual(time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC))
	return app.Wire(cfg, store, clk, logger.Discard())
}

/*
TestWire_ShoppingJourney drives the wired components from a fresh store to a placed order.
*/
func TestWire_ShoppingJourney(t *testing.T) {
	ctx := context.Background()
	a := wire(kv.NewMemory())

	_, err := a.Seed.Bootstrap(ctx)
	require.NoError(t, err)

	result, err := a.Auth.Login(ctx, auth.LoginInput{Email: "admin@lookeasy.com", Senha: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, constants.RedirectAdmin, result.Redirect)

	_, err = a.Cart.AddItem(ctx, cart.AddItemInput{ProductID: 6, Quantidade: 3})
	require.NoError(t, err)

	placed, err := a.Checkout.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, placed.UserID)

	product, err := a.Catalog.FindByID(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Estoque)

	require.NoError(t, a.Close())
}

/*
TestHealth reports ready, degraded on a version drift and degraded on a dead store.
*/
func TestHealth(t *testing.T) {
	ctx := context.Background()

	a := wire(kv.NewMemory())
	assert.Equal(t, "degraded", a.Health(ctx).Status)

	_, err := a.Seed.Bootstrap(ctx)
	require.NoError(t, err)
	report := a.Health(ctx)
	assert.Equal(t, "ready", report.Status)
	assert.Equal(t, config.DriverMemory, report.Driver)
	assert.Len(t, report.Checks, 2)

	current, err := a.Settings.Get(ctx)
	require.NoError(t, err)
	current.Sistema.Versao = "0.9.0"
	require.NoError(t, a.Settings.Replace(ctx, *current))
	assert.Equal(t, "degraded", a.Health(ctx).Status)

	dead := wire(failingStore{}).Health(ctx)
	assert.Equal(t, "degraded", dead.Status)
	require.Len(t, dead.Checks, 1)
	assert.False(t, dead.Checks[0].OK)
}
