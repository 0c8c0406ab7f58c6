// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app wires every component over one store handle.

No business logic lives here. All wiring is explicit constructor injection, and
the store opened by [New] is the single instance of the process.
*/
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/taibuivan/lookeasy/internal/backup"
	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/config"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/seed"
	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/internal/shop/cart"
	"github.com/taibuivan/lookeasy/internal/shop/checkout"
	"github.com/taibuivan/lookeasy/internal/shop/order"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/internal/users/auth"
	"github.com/taibuivan/lookeasy/internal/users/session"
)

// App holds the wired components.
type App struct {
	Config *config.Config
	Store  kv.Store
	Logger *slog.Logger

	Catalog  *catalog.Repository
	Accounts *account.Repository
	Sessions *session.Manager
	Auth     *auth.Service
	Cart     *cart.Engine
	Orders   *order.Engine
	Checkout *checkout.Service
	Settings *settings.Repository
	Seed     *seed.Bootstrapper
	Backup   *backup.Service
}

// New opens the configured store and wires every component over it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := kv.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app_store_open_failed: %w", err)
	}
	return Wire(cfg, store, clock.System{}, logger), nil
}

// Wire builds the components over an already opened store.
func Wire(cfg *config.Config, store kv.Store, clk clock.Clock, logger *slog.Logger) *App {
	hasher := sec.NewPasswordHasher(cfg.BcryptCost)

	products := catalog.NewRepository(store, clk, logger)
	accounts := account.NewRepository(store, hasher, clk, logger)
	sessions := session.NewManager(store, clk, logger)
	settingsRepo := settings.NewRepository(store, logger)
	cartEngine := cart.NewEngine(store, products, clk, logger)
	orders := order.NewEngine(store, accounts, clk, logger)

	var limiter *rate.Limiter
	if cfg.LoginRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst)
	}

	authService := auth.NewService(accounts, sessions, auth.NewResetStore(store), clk, logger, auth.Options{
		Limiter:          limiter,
		Throttle:         auth.NewThrottleStore(store),
		ExposeResetToken: cfg.ExposeResetToken,
	})

	return &App{
		Config:   cfg,
		Store:    store,
		Logger:   logger,
		Catalog:  products,
		Accounts: accounts,
		Sessions: sessions,
		Auth:     authService,
		Cart:     cartEngine,
		Orders:   orders,
		Checkout: checkout.NewService(cartEngine, products, orders, sessions, logger),
		Settings: settingsRepo,
		Seed:     seed.NewBootstrapper(store, accounts, products, settingsRepo, orders, clk, logger),
		Backup:   backup.NewService(accounts, products, settingsRepo, clk, logger),
	}
}

// Close releases the store.
func (a *App) Close() error {
	a.Logger.Debug("closing_store", slog.String("driver", a.Config.StoreDriver))
	return a.Store.Close()
}
