// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package backup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/validate"
	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/pkg/fold"
)

const msgDuplicateID = "Id duplicado"

// ImportReport counts what an Import wrote.
type ImportReport struct {
	Users    int  `json:"users"`
	Products int  `json:"products"`
	Settings bool `json:"settings"`
}

// Service moves snapshots in and out of the store.
type Service struct {
	accounts *account.Repository
	catalog  *catalog.Repository
	settings *settings.Repository
	clock    clock.Clock
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(accounts *account.Repository, products *catalog.Repository, settingsRepo *settings.Repository, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{accounts: accounts, catalog: products, settings: settingsRepo, clock: clk, logger: logger}
}

// Export captures users, products and settings.
func (service *Service) Export(ctx context.Context) (*Snapshot, error) {
	users, err := service.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	products, err := service.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	current, err := service.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Users:      nonNil(users),
		Products:   nonNil(products),
		Settings:   current,
		ExportDate: service.clock.Now(),
	}

	service.logger.Info("backup_exported", slog.Int("users", len(users)), slog.Int("products", len(products)))
	return snapshot, nil
}

/*
Import writes the sections present in snapshot.

Description: The whole snapshot is checked before anything is written. Ids
must be unique within each section, active users must have distinct folded
emails and products must have non-negative price and stock.

Returns:
  - *ImportReport: What was written
  - error: VALIDATION_ERROR or STORAGE_FAILURE
*/
func (service *Service) Import(ctx context.Context, snapshot Snapshot) (*ImportReport, error) {
	if err := check(snapshot); err != nil {
		return nil, err
	}

	report := &ImportReport{}

	if snapshot.Users != nil {
		if err := service.accounts.Replace(ctx, snapshot.Users); err != nil {
			return nil, fmt.Errorf("backup_import_users_failed: %w", err)
		}
		report.Users = len(snapshot.Users)
	}

	if snapshot.Products != nil {
		if err := service.catalog.Replace(ctx, snapshot.Products); err != nil {
			return nil, fmt.Errorf("backup_import_products_failed: %w", err)
		}
		report.Products = len(snapshot.Products)
	}

	if snapshot.Settings != nil {
		if err := service.settings.Replace(ctx, *snapshot.Settings); err != nil {
			return nil, fmt.Errorf("backup_import_settings_failed: %w", err)
		}
		report.Settings = true
	}

	service.logger.Info("backup_imported",
		slog.Int("users", report.Users),
		slog.Int("products", report.Products),
		slog.Bool("settings", report.Settings),
	)
	return report, nil
}

// check validates a snapshot before import.
func check(snapshot Snapshot) error {
	v := &validate.Validator{}

	userIDs := map[int]bool{}
	emails := map[string]bool{}
	for _, user := range snapshot.Users {
		field := fmt.Sprintf("users[%d]", user.ID)
		v.Email(field, user.Email).
			Custom(field, !user.Role.Valid(), "Perfil inválido").
			Custom(field, userIDs[user.ID], msgDuplicateID)
		userIDs[user.ID] = true

		if !user.Ativo {
			continue
		}
		key := fold.Email(user.Email)
		v.Custom(field, emails[key], "Email duplicado: "+key)
		emails[key] = true
	}

	productIDs := map[int]bool{}
	for _, product := range snapshot.Products {
		field := fmt.Sprintf("products[%d]", product.ID)
		v.NonNegativeAmount(field, product.Preco).
			NonNegative(field, product.Estoque).
			Custom(field, productIDs[product.ID], msgDuplicateID)
		productIDs[product.ID] = true
	}

	return v.Err()
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
