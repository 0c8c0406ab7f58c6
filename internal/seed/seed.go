// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed prepares the store for use.

Bootstrap runs at every startup. It compares the stored settings version with
[constants.DBVersion] and reseeds the catalog and settings on a mismatch, then
fills in any collection that is still missing. Users, cart and orders are never
overwritten by an upgrade.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/internal/shop/order"
	"github.com/taibuivan/lookeasy/internal/users/account"
)

// Report describes what a Bootstrap run changed.
type Report struct {
	// FromVersion is the version found in the store before the run.
	FromVersion string `json:"fromVersion"`
	// Upgraded is true when the version guard reseeded catalog and settings.
	Upgraded bool `json:"upgraded"`
	// Seeded lists the storage keys written with defaults.
	Seeded []string `json:"seeded"`
}

// Bootstrapper owns startup seeding and the development wipe.
type Bootstrapper struct {
	store    kv.Store
	accounts *account.Repository
	catalog  *catalog.Repository
	settings *settings.Repository
	orders   *order.Engine
	clock    clock.Clock
	logger   *slog.Logger
}

// NewBootstrapper constructs a new [Bootstrapper].
func NewBootstrapper(
	store kv.Store,
	accounts *account.Repository,
	products *catalog.Repository,
	settingsRepo *settings.Repository,
	orders *order.Engine,
	clk clock.Clock,
	logger *slog.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		store:    store,
		accounts: accounts,
		catalog:  products,
		settings: settingsRepo,
		orders:   orders,
		clock:    clk,
		logger:   logger,
	}
}

/*
Bootstrap runs the version guard and seeds missing collections.

Description: A missing settings document counts as version "1.0.0". Running it
twice in a row changes nothing the second time.

Returns:
  - *Report: What was written
  - error: STORAGE_FAILURE
*/
func (bootstrapper *Bootstrapper) Bootstrap(ctx context.Context) (*Report, error) {
	report := &Report{FromVersion: constants.LegacyDBVersion}

	stored, found, err := bootstrapper.settings.Stored(ctx)
	if err != nil {
		return nil, err
	}
	if found && stored.Sistema.Versao != "" {
		report.FromVersion = stored.Sistema.Versao
	}

	if report.FromVersion != constants.DBVersion {
		bootstrapper.logger.Info("store_upgrade_started",
			slog.String("from", report.FromVersion),
			slog.String("to", constants.DBVersion),
		)
		if err := bootstrapper.seedProducts(ctx, report); err != nil {
			return nil, err
		}
		if err := bootstrapper.seedSettings(ctx, report); err != nil {
			return nil, err
		}
		report.Upgraded = true
	}

	steps := []struct {
		key  string
		seed func(context.Context, *Report) error
	}{
		{constants.KeyUsers, bootstrapper.seedUsers},
		{constants.KeyProducts, bootstrapper.seedProducts},
		{constants.KeySettings, bootstrapper.seedSettings},
		{constants.KeyOrders, bootstrapper.seedOrders},
	}

	for _, step := range steps {
		present, err := kv.Exists(ctx, bootstrapper.store, step.key)
		if err != nil {
			return nil, err
		}
		if present {
			continue
		}
		if err := step.seed(ctx, report); err != nil {
			return nil, err
		}
	}

	if len(report.Seeded) > 0 {
		bootstrapper.logger.Info("store_seeded", slog.Any("keys", report.Seeded), slog.Bool("upgraded", report.Upgraded))
	}
	return report, nil
}

/*
Wipe resets the store to factory state for development.

Description: Removes users, products, cart, session and settings, then runs
Bootstrap. Orders are kept.
*/
func (bootstrapper *Bootstrapper) Wipe(ctx context.Context) (*Report, error) {
	keys := []string{
		constants.KeyUsers,
		constants.KeyProducts,
		constants.KeyCart,
		constants.KeySession,
		constants.KeySettings,
	}

	for _, key := range keys {
		if err := kv.Delete(ctx, bootstrapper.store, key); err != nil {
			return nil, err
		}
	}

	bootstrapper.logger.Warn("store_wiped", slog.Any("keys", keys))
	return bootstrapper.Bootstrap(ctx)
}

// # Seed Steps

func (bootstrapper *Bootstrapper) seedUsers(ctx context.Context, report *Report) error {
	for _, user := range DefaultUsers {
		if _, err := bootstrapper.accounts.Create(ctx, user); err != nil {
			return fmt.Errorf("seed_users_failed: %w", err)
		}
	}
	report.Seeded = appendOnce(report.Seeded, constants.KeyUsers)
	return nil
}

func (bootstrapper *Bootstrapper) seedProducts(ctx context.Context, report *Report) error {
	products, err := DefaultProducts(bootstrapper.clock.Now())
	if err != nil {
		return err
	}
	if err := bootstrapper.catalog.Replace(ctx, products); err != nil {
		return err
	}
	report.Seeded = appendOnce(report.Seeded, constants.KeyProducts)
	return nil
}

func (bootstrapper *Bootstrapper) seedSettings(ctx context.Context, report *Report) error {
	if err := bootstrapper.settings.Replace(ctx, settings.Defaults()); err != nil {
		return err
	}
	report.Seeded = appendOnce(report.Seeded, constants.KeySettings)
	return nil
}

func (bootstrapper *Bootstrapper) seedOrders(ctx context.Context, report *Report) error {
	if err := bootstrapper.orders.Replace(ctx, DefaultOrders(bootstrapper.clock.Now())); err != nil {
		return err
	}
	report.Seeded = appendOnce(report.Seeded, constants.KeyOrders)
	return nil
}

func appendOnce(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}
