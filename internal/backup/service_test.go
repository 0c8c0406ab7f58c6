// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package backup_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/backup"
	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/settings"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/pkg/money"
	"github.com/taibuivan/lookeasy/pkg/pointer"
)

type fixture struct {
	accounts *account.Repository
	catalog  *catalog.Repository
	settings *settings.Repository
	service  *backup.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemory()
	clk := clock.NewManual(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	log := logger.Discard()

	f := &fixture{
		accounts: account.NewRepository(store, sec.NewPasswordHasher(4), clk, log),
		catalog:  catalog.NewRepository(store, clk, log),
		settings: settings.NewRepository(store, log),
	}
	f.service = backup.NewService(f.accounts, f.catalog, f.settings, clk, log)
	return f
}

func populate(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	_, err := f.accounts.Create(ctx, account.NewUser{Nome: "Administrador", Email: "admin@lookeasy.com", Senha: "admin123", Role: sec.RoleAdmin})
	require.NoError(t, err)
	_, err = f.catalog.Create(ctx, catalog.NewProduct{Nome: "Óculos de Sol", Categoria: catalog.CategoryAcessorios, Preco: money.MustParse("199.90"), Estoque: 25, Tamanhos: []string{"Único"}})
	require.NoError(t, err)
	_, err = f.settings.Update(ctx, settings.Patch{EstoqueMinimo: pointer.To(3)})
	require.NoError(t, err)
}

/*
TestExportImport_AcrossStores moves a snapshot through each format into an empty store.
*/
func TestExportImport_AcrossStores(t *testing.T) {
	for _, format := range []backup.Format{backup.FormatJSON, backup.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			source := newFixture(t)
			populate(t, source)

			snapshot, err := source.service.Export(ctx)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, backup.Encode(&buf, *snapshot, format))

			decoded, err := backup.Decode(&buf, format)
			require.NoError(t, err)

			target := newFixture(t)
			report, err := target.service.Import(ctx, *decoded)
			require.NoError(t, err)
			assert.Equal(t, backup.ImportReport{Users: 1, Products: 1, Settings: true}, *report)

			admin, err := target.accounts.FindByEmail(ctx, "admin@lookeasy.com")
			require.NoError(t, err)
			assert.True(t, target.accounts.VerifyPassword(admin, "admin123"))

			product, err := target.catalog.FindByID(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, "Óculos de Sol", product.Nome)
			assert.Equal(t, "199.90", money.Format(product.Preco))
			assert.True(t, product.Ativo)

			current, err := target.settings.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, current.Sistema.EstoqueMinimo)
		})
	}
}

/*
TestImport_OnlyPresentSections leaves absent sections untouched.
*/
func TestImport_OnlyPresentSections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	populate(t, f)

	input := `{"products": [{"id": 7, "nome": "Vestido Rosa", "categoria": "feminino", "preco": 129.9, "estoque": 8, "ativo": true}]}`
	snapshot, err := backup.Decode(strings.NewReader(input), backup.FormatJSON)
	require.NoError(t, err)

	report, err := f.service.Import(ctx, *snapshot)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Users)
	assert.False(t, report.Settings)

	users, err := f.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	products, err := f.catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].ID)
}

/*
TestImport_RejectsBrokenInvariants ensures nothing is written from an invalid snapshot.
*/
func TestImport_RejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name     string
		snapshot backup.Snapshot
		fields   []string
	}{
		{
			name: "duplicate_email_and_negative_stock",
			snapshot: backup.Snapshot{
				Users: []account.User{
					{ID: 1, Email: "dup@lookeasy.com", Role: sec.RoleCliente, Ativo: true},
					{ID: 2, Email: "DUP@lookeasy.com", Role: sec.RoleCliente, Ativo: true},
				},
				Products: []catalog.Product{{ID: 1, Nome: "Negativo", Estoque: -1}},
			},
			fields: []string{"users[2]", "products[1]"},
		},
		{
			name: "negative_price",
			snapshot: backup.Snapshot{
				Products: []catalog.Product{{ID: 3, Nome: "Desconto", Preco: money.MustParse("-0.01"), Estoque: 1}},
			},
			fields: []string{"products[3]"},
		},
		{
			name: "duplicate_product_id",
			snapshot: backup.Snapshot{
				Products: []catalog.Product{
					{ID: 1, Nome: "A", Preco: money.MustParse("10"), Estoque: 0},
					{ID: 1, Nome: "B", Preco: money.MustParse("10"), Estoque: 5},
				},
			},
			fields: []string{"products[1]"},
		},
		{
			name: "duplicate_user_id",
			snapshot: backup.Snapshot{
				Users: []account.User{
					{ID: 4, Email: "um@lookeasy.com", Role: sec.RoleCliente, Ativo: true},
					{ID: 4, Email: "dois@lookeasy.com", Role: sec.RoleCliente, Ativo: false},
				},
			},
			fields: []string{"users[4]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			populate(t, f)

			_, err := f.service.Import(ctx, tt.snapshot)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, d := range ae.Details {
				fields = append(fields, d.Field)
			}
			assert.Equal(t, tt.fields, fields)

			// Nothing was written
			users, err := f.accounts.List(ctx)
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, "admin@lookeasy.com", users[0].Email)

			products, err := f.catalog.List(ctx)
			require.NoError(t, err)
			require.Len(t, products, 1)
			assert.Equal(t, "Óculos de Sol", products[0].Nome)
		})
	}
}

/*
TestParseFormat covers accepted spellings and extension detection.
*/
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  backup.Format
		ok    bool
	}{
		{"json", backup.FormatJSON, true},
		{"YAML", backup.FormatYAML, true},
		{" yml ", backup.FormatYAML, true},
		{"xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := backup.ParseFormat(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, backup.FormatYAML, backup.FormatFromPath("backup/lookeasy.yml"))
	assert.Equal(t, backup.FormatJSON, backup.FormatFromPath("backup/lookeasy.bak"))
}
