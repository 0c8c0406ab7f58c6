// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/pkg/pointer"
)

func newRepository(t *testing.T) *account.Repository {
	t.Helper()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return account.NewRepository(kv.NewMemory(), sec.NewPasswordHasher(4), clock.NewManual(start), logger.Discard())
}

/*
TestCreate_AssignsIdentity verifies id allocation, email folding and password digesting.
*/
func TestCreate_AssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	first, err := repo.Create(ctx, account.NewUser{Nome: "Ana Souza", Email: "  Ana@LookEasy.com ", Senha: "segredo1"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, account.NewUser{Nome: "Admin", Email: "admin@lookeasy.com", Senha: "admin123", Role: sec.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "ana@lookeasy.com", first.Email)
	assert.Equal(t, sec.RoleCliente, first.Role)
	assert.True(t, first.Ativo)
	assert.NotEqual(t, "segredo1", first.Senha)
	assert.True(t, repo.VerifyPassword(first, "segredo1"))
	assert.False(t, repo.VerifyPassword(first, "segredo2"))
	assert.True(t, second.IsAdmin())
}

/*
TestFindByEmail_CaseInsensitive tests lookups with differently cased input.
*/
func TestFindByEmail_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	_, err := repo.Create(ctx, account.NewUser{Nome: "Cliente Teste", Email: "cliente@lookeasy.com", Senha: "cliente123"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		email string
		found bool
	}{
		{"exact", "cliente@lookeasy.com", true},
		{"upper", "CLIENTE@LOOKEASY.COM", true},
		{"padded", " cliente@lookeasy.com ", true},
		{"unknown", "outro@lookeasy.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.FindByEmail(ctx, tt.email)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, "Cliente Teste", user.Nome)
			} else {
				assert.True(t, apperr.Is(err, apperr.CodeNotFound))
			}

			exists, err := repo.EmailExists(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.found, exists)
		})
	}
}

/*
TestDeactivate_HidesFromActiveLookup ensures soft-deleted users are skipped by
FindByEmail but still reachable through FindAnyByEmail.
*/
func TestDeactivate_HidesFromActiveLookup(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	user, err := repo.Create(ctx, account.NewUser{Nome: "Bruno", Email: "bruno@lookeasy.com", Senha: "senha123"})
	require.NoError(t, err)

	_, err = repo.Deactivate(ctx, user.ID)
	require.NoError(t, err)

	_, err = repo.FindByEmail(ctx, "bruno@lookeasy.com")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	found, err := repo.FindAnyByEmail(ctx, "BRUNO@lookeasy.com")
	require.NoError(t, err)
	assert.False(t, found.Ativo)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

/*
TestFindAnyByEmail_PrefersActive checks that a re-registered email resolves to the live account.
*/
func TestFindAnyByEmail_PrefersActive(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	old, err := repo.Create(ctx, account.NewUser{Nome: "Carla", Email: "carla@lookeasy.com", Senha: "antiga1"})
	require.NoError(t, err)
	_, err = repo.Deactivate(ctx, old.ID)
	require.NoError(t, err)

	fresh, err := repo.Create(ctx, account.NewUser{Nome: "Carla", Email: "carla@lookeasy.com", Senha: "nova123"})
	require.NoError(t, err)

	found, err := repo.FindAnyByEmail(ctx, "carla@lookeasy.com")
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, found.ID)
	assert.True(t, found.Ativo)
}

/*
TestUpdate_RehashesPassword verifies that a new raw password is digested before storage.
*/
func TestUpdate_RehashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	user, err := repo.Create(ctx, account.NewUser{Nome: "Diego", Email: "diego@lookeasy.com", Senha: "velha12"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, user.ID, account.Patch{Senha: pointer.To("nova1234"), Nome: pointer.To(" Diego Lima ")})
	require.NoError(t, err)

	assert.Equal(t, "Diego Lima", updated.Nome)
	assert.NotEqual(t, "nova1234", updated.Senha)
	assert.True(t, repo.VerifyPassword(updated, "nova1234"))
	assert.False(t, repo.VerifyPassword(updated, "velha12"))

	_, err = repo.Update(ctx, 99, account.Patch{Nome: pointer.To("x")})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

/*
TestList_EmptyStoreIsArray keeps a never-written user list encoding as [] rather than null.
*/
func TestList_EmptyStoreIsArray(t *testing.T) {
	users, err := newRepository(t).List(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(users)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
