// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/validate"
)

// Repository reads and writes the settings document.
type Repository struct {
	store  kv.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewRepository constructs a new [Repository].
func NewRepository(store kv.Store, logger *slog.Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Get returns the stored settings, or [Defaults] when none are stored.
func (repository *Repository) Get(ctx context.Context) (*Settings, error) {
	stored, found, err := repository.Stored(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		defaults := Defaults()
		return &defaults, nil
	}
	return stored, nil
}

// Stored returns the settings document exactly as persisted.
func (repository *Repository) Stored(ctx context.Context) (*Settings, bool, error) {
	var stored Settings
	found, err := kv.Load(ctx, repository.store, constants.KeySettings, &stored)
	if err != nil || !found {
		return nil, false, err
	}
	return &stored, true, nil
}

/*
Update merges patch over the current settings and stores the result.

Returns:
  - *Settings: The stored document
  - error: VALIDATION_ERROR or STORAGE_FAILURE
*/
func (repository *Repository) Update(ctx context.Context, patch Patch) (*Settings, error) {
	v := &validate.Validator{}
	if patch.Email != nil {
		v.Email("email", *patch.Email)
	}
	if patch.EstoqueMinimo != nil {
		v.NonNegative("estoqueMinimo", *patch.EstoqueMinimo)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, err := repository.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Nome != nil {
		current.Empresa.Nome = *patch.Nome
	}
	if patch.Email != nil {
		current.Empresa.Email = *patch.Email
	}
	if patch.Telefone != nil {
		current.Empresa.Telefone = *patch.Telefone
	}
	if patch.Endereco != nil {
		current.Empresa.Endereco = *patch.Endereco
	}
	if patch.ModoManutencao != nil {
		current.Sistema.ModoManutencao = *patch.ModoManutencao
	}
	if patch.EstoqueMinimo != nil {
		current.Sistema.EstoqueMinimo = *patch.EstoqueMinimo
	}

	if err := kv.Save(ctx, repository.store, constants.KeySettings, current); err != nil {
		return nil, err
	}

	repository.logger.Info("settings_updated")
	return current, nil
}

// Replace overwrites the whole document. Used by seeding and backup import.
func (repository *Repository) Replace(ctx context.Context, settings Settings) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return kv.Save(ctx, repository.store, constants.KeySettings, settings)
}
