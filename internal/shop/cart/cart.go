// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cart implements the single implicit shopping cart.

Lines snapshot the product name, price and image at add time. Quantities are
checked against the product's current stock on every mutation, so a line never
holds more units than the catalog had at that moment.
*/
package cart

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/pkg/money"
)

// # Domain Entities

// Item is one cart line.
//
// (ProductID, Tamanho, Cor) is the merge key: adding the same variant twice
// grows the existing line instead of appending a new one.
type Item struct {
	ID         string          `json:"id"`
	ProductID  int             `json:"productId"`
	Nome       string          `json:"nome"`
	Preco      decimal.Decimal `json:"preco"`
	Imagem     string          `json:"imagem"`
	Quantidade int             `json:"quantidade"`
	Tamanho    string          `json:"tamanho"`
	Cor        string          `json:"cor"`
	AddedAt    time.Time       `json:"addedAt"`
}

// Subtotal is preco times quantidade.
func (i Item) Subtotal() decimal.Decimal {
	return money.Times(i.Preco, i.Quantidade)
}

func (i Item) matches(productID int, tamanho, cor string) bool {
	return i.ProductID == productID && i.Tamanho == tamanho && i.Cor == cor
}

// AddItemInput selects a product variant and a quantity.
type AddItemInput struct {
	ProductID  int
	Quantidade int
	Tamanho    string
	Cor        string
}

// # Contracts

// Products is the catalog lookup the cart depends on.
type Products interface {
	FindByID(ctx context.Context, id int) (*catalog.Product, error)
}
