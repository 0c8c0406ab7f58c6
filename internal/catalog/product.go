// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog owns the Product collection: listing, filtering, admin edits and
every stock movement.

# Architecture

The Repository is the single inventory-integrity checkpoint of the system.
Stock is never observed negative: SetStock clamps, DecrementStock refuses, and
DebitStock validates every line before committing any of them.
*/
package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	// Stored prices encode as JSON numbers.
	_ "github.com/taibuivan/lookeasy/pkg/money"
)

// # Domain Entities

// Category tags used by the storefront. Categoria is free-form, anything
// other than feminino/masculino falls in the "outros" gender bucket.
const (
	CategoryFeminino   = "feminino"
	CategoryMasculino  = "masculino"
	CategoryAcessorios = "acessorios"
	CategoryOutros     = "outros"

	// CategoryAll disables the category predicate of a [Filter].
	CategoryAll = "todos"
)

// Product is a sellable catalog item. Rows are never deleted, Ativo=false hides them.
type Product struct {
	ID           int             `json:"id" yaml:"id"`
	Nome         string          `json:"nome" yaml:"nome"`
	Categoria    string          `json:"categoria" yaml:"categoria"`
	Preco        decimal.Decimal `json:"preco" yaml:"preco"`
	Imagem       string          `json:"imagem" yaml:"imagem"`
	Estoque      int             `json:"estoque" yaml:"estoque"`
	Tamanhos     []string        `json:"tamanhos" yaml:"tamanhos"`
	Cores        []string        `json:"cores" yaml:"cores"`
	Descricao    string          `json:"descricao" yaml:"descricao"`
	Ativo        bool            `json:"ativo" yaml:"ativo"`
	DataCadastro time.Time       `json:"dataCadastro" yaml:"dataCadastro"`
}

// HasSize reports whether the product is offered in size.
func (p *Product) HasSize(size string) bool {
	return contains(p.Tamanhos, size)
}

// HasColor reports whether the product is offered in color.
func (p *Product) HasColor(color string) bool {
	return contains(p.Cores, color)
}

// NewProduct holds the data required to register a product.
type NewProduct struct {
	Nome      string
	Categoria string
	Preco     decimal.Decimal
	Imagem    string
	Estoque   int
	Tamanhos  []string
	Cores     []string
	Descricao string
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Nome      *string
	Categoria *string
	Preco     *decimal.Decimal
	Imagem    *string
	Estoque   *int
	Tamanhos  *[]string
	Cores     *[]string
	Descricao *string
	Ativo     *bool
}

// StockLine is one (product, quantity) pair of a multi-line stock movement.
type StockLine struct {
	ProductID  int
	Nome       string
	Quantidade int
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
