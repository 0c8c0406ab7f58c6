// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/pkg/pointer"
)

/*
TestGet_DefaultsWhenMissing verifies the factory values and that nothing is written on read.
*/
func TestGet_DefaultsWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewRepository(kv.NewMemory(), logger.Discard())

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "LookEasy", got.Empresa.Nome)
	assert.Equal(t, constants.DBVersion, got.Sistema.Versao)
	assert.Equal(t, 5, got.Sistema.EstoqueMinimo)

	_, found, err := repo.Stored(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

/*
TestUpdate_MergesPatch tests partial updates and their validation.
*/
func TestUpdate_MergesPatch(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewRepository(kv.NewMemory(), logger.Discard())

	updated, err := repo.Update(ctx, settings.Patch{Telefone: pointer.To("(21) 3333-4444"), EstoqueMinimo: pointer.To(8)})
	require.NoError(t, err)
	assert.Equal(t, "(21) 3333-4444", updated.Empresa.Telefone)
	assert.Equal(t, "contato@lookeasy.com", updated.Empresa.Email)
	assert.Equal(t, 8, updated.Sistema.EstoqueMinimo)

	stored, found, err := repo.Stored(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *updated, *stored)

	_, err = repo.Update(ctx, settings.Patch{Email: pointer.To("sem-arroba"), EstoqueMinimo: pointer.To(-1)})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}
