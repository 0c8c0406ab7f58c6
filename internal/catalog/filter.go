// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/taibuivan/lookeasy/pkg/fold"
	"github.com/taibuivan/lookeasy/pkg/slice"
)

// Filter holds the optional storefront criteria. Zero values disable a predicate
// and every supplied predicate must hold (AND).
type Filter struct {
	// Categoria matches exactly. Empty or "todos" means every category.
	Categoria string
	// Genero is feminino, masculino or outros. "outros" matches every
	// category that is neither feminino nor masculino.
	Genero string
	// PrecoMin and PrecoMax are inclusive bounds.
	PrecoMin *decimal.Decimal
	PrecoMax *decimal.Decimal
	// Tamanho and Cor must be offered by the product.
	Tamanho string
	Cor     string
	// Busca is matched against nome and descricao, ignoring case and accents.
	Busca string
}

// predicates turns the criteria into the ordered list of checks to apply.
func (f Filter) predicates() []func(Product) bool {
	var checks []func(Product) bool

	if f.Categoria != "" && f.Categoria != CategoryAll {
		checks = append(checks, func(p Product) bool { return p.Categoria == f.Categoria })
	}

	if f.Genero != "" {
		checks = append(checks, func(p Product) bool { return genderBucket(p.Categoria, f.Genero) })
	}

	if f.PrecoMin != nil {
		min := *f.PrecoMin
		checks = append(checks, func(p Product) bool { return p.Preco.GreaterThanOrEqual(min) })
	}

	if f.PrecoMax != nil {
		max := *f.PrecoMax
		checks = append(checks, func(p Product) bool { return p.Preco.LessThanOrEqual(max) })
	}

	if f.Tamanho != "" {
		checks = append(checks, func(p Product) bool { return p.HasSize(f.Tamanho) })
	}

	if f.Cor != "" {
		checks = append(checks, func(p Product) bool { return p.HasColor(f.Cor) })
	}

	if f.Busca != "" {
		checks = append(checks, func(p Product) bool {
			return fold.Contains(p.Nome, f.Busca) || fold.Contains(p.Descricao, f.Busca)
		})
	}

	return checks
}

// apply runs every predicate in sequence over products.
func (f Filter) apply(products []Product) []Product {
	for _, check := range f.predicates() {
		products = slice.Filter(products, check)
	}
	return products
}

// genderBucket reports whether categoria belongs to the requested gender bucket.
func genderBucket(categoria, genero string) bool {
	if categoria == genero {
		return true
	}
	return genero == CategoryOutros && categoria != CategoryFeminino && categoria != CategoryMasculino
}
