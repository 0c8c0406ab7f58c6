// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/pkg/money"
	"github.com/taibuivan/lookeasy/pkg/pointer"
)

/*
TestFilter_Criteria checks each storefront criterion and their conjunction.
*/
func TestFilter_Criteria(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	mustCreate(t, repo, catalog.NewProduct{Nome: "Camiseta Premium", Categoria: catalog.CategoryFeminino, Preco: money.MustParse("89.90"), Estoque: 5,
		Tamanhos: []string{"P", "M"}, Cores: []string{"Preto", "Branco"}, Descricao: "Algodão orgânico"})
	mustCreate(t, repo, catalog.NewProduct{Nome: "Calça Jeans", Categoria: catalog.CategoryMasculino, Preco: money.MustParse("159.90"), Estoque: 5,
		Tamanhos: []string{"40", "42"}, Cores: []string{"Azul"}})
	mustCreate(t, repo, catalog.NewProduct{Nome: "Óculos de Sol", Categoria: catalog.CategoryAcessorios, Preco: money.MustParse("199.90"), Estoque: 5,
		Cores: []string{"Preto"}})
	mustCreate(t, repo, catalog.NewProduct{Nome: "Tênis Esportivo", Categoria: "calcados", Preco: money.MustParse("299.90"), Estoque: 5,
		Tamanhos: []string{"40"}, Cores: []string{"Branco"}})
	hidden := mustCreate(t, repo, catalog.NewProduct{Nome: "Camiseta Antiga", Categoria: catalog.CategoryFeminino, Preco: money.MustParse("10"), Estoque: 5})
	_, err := repo.Deactivate(ctx, hidden.ID)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter catalog.Filter
		want   []string
	}{
		{"all", catalog.Filter{Categoria: catalog.CategoryAll}, []string{"Camiseta Premium", "Calça Jeans", "Óculos de Sol", "Tênis Esportivo"}},
		{"category", catalog.Filter{Categoria: catalog.CategoryFeminino}, []string{"Camiseta Premium"}},
		{"gender_outros_bucket", catalog.Filter{Genero: catalog.CategoryOutros}, []string{"Óculos de Sol", "Tênis Esportivo"}},
		{"price_range", catalog.Filter{PrecoMin: pointer.To(money.MustParse("100")), PrecoMax: pointer.To(money.MustParse("200"))}, []string{"Calça Jeans", "Óculos de Sol"}},
		{"size", catalog.Filter{Tamanho: "40"}, []string{"Calça Jeans", "Tênis Esportivo"}},
		{"color_and_price", catalog.Filter{Cor: "Preto", PrecoMax: pointer.To(money.MustParse("100"))}, []string{"Camiseta Premium"}},
		{"search_accent_insensitive", catalog.Filter{Busca: "OCULOS"}, []string{"Óculos de Sol"}},
		{"search_description", catalog.Filter{Busca: "algodao"}, []string{"Camiseta Premium"}},
		{"no_match", catalog.Filter{Busca: "sapato", Cor: "Verde"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.Filter(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Nome)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	byCategory, err := repo.ListByCategory(ctx, catalog.CategoryMasculino)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}
