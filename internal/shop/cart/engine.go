// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/pkg/money"
	"github.com/taibuivan/lookeasy/pkg/slice"
	"github.com/taibuivan/lookeasy/pkg/uuid"
)

const (
	msgUnavailable  = "Produto indisponível ou sem estoque suficiente"
	msgInsufficient = "Estoque insuficiente"
	msgQuantity     = "Quantidade indisponível em estoque"
)

// Engine owns the cart document.
type Engine struct {
	store    kv.Store
	products Products
	clock    clock.Clock
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewEngine constructs a new [Engine].
func NewEngine(store kv.Store, products Products, clk clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{store: store, products: products, clock: clk, logger: logger}
}

// # Reads

// Get returns the current lines. An empty cart is an empty slice.
func (engine *Engine) Get(ctx context.Context) ([]Item, error) {
	return engine.load(ctx)
}

// Total is the exact sum of every line subtotal.
func (engine *Engine) Total(ctx context.Context) (decimal.Decimal, error) {
	items, err := engine.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return Total(items), nil
}

// ItemCount is the number of units across all lines.
func (engine *Engine) ItemCount(ctx context.Context) (int, error) {
	items, err := engine.load(ctx)
	if err != nil {
		return 0, err
	}
	return slice.Reduce(items, 0, func(acc int, i Item) int { return acc + i.Quantidade }), nil
}

// Total sums the subtotals of items.
func Total(items []Item) decimal.Decimal {
	return money.Sum(items, Item.Subtotal)
}

// # Writes

/*
AddItem puts a product variant in the cart.

Description: A missing, deactivated or short-stocked product is
PRODUCT_UNAVAILABLE. When the variant is already in the cart its quantity
grows, and the combined quantity is checked again: if it exceeds the stock the
result is INSUFFICIENT_STOCK and the existing line is left as it was.

Returns:
  - *Item: The new or merged line
  - error: VALIDATION_ERROR, PRODUCT_UNAVAILABLE, INSUFFICIENT_STOCK or STORAGE_FAILURE
*/
func (engine *Engine) AddItem(ctx context.Context, input AddItemInput) (*Item, error) {
	if input.Quantidade < 1 {
		return nil, apperr.ValidationError("Dados inválidos", apperr.FieldError{Field: "quantidade", Message: "Quantidade deve ser maior que zero"})
	}

	product, err := engine.products.FindByID(ctx, input.ProductID)
	if apperr.Is(err, apperr.CodeNotFound) {
		return nil, apperr.ProductUnavailable(msgUnavailable)
	}
	if err != nil {
		return nil, err
	}
	if !product.Ativo || product.Estoque < input.Quantidade {
		return nil, apperr.ProductUnavailable(msgUnavailable)
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()

	items, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	var line *Item
	for i := range items {
		if items[i].matches(input.ProductID, input.Tamanho, input.Cor) {
			combined := items[i].Quantidade + input.Quantidade
			if combined > product.Estoque {
				return nil, apperr.InsufficientStock(msgInsufficient)
			}
			items[i].Quantidade = combined
			line = &items[i]
			break
		}
	}

	if line == nil {
		items = append(items, snapshot(product, input, engine.clock))
		line = &items[len(items)-1]
	}

	if err := engine.save(ctx, items); err != nil {
		return nil, err
	}

	added := *line
	engine.logger.Info("cart_item_added",
		slog.String("item_id", added.ID),
		slog.Int("product_id", added.ProductID),
		slog.Int("quantity", added.Quantidade),
	)
	return &added, nil
}

/*
UpdateQuantity replaces the quantity of one line.

Returns:
  - *Item: Updated line
  - error: NOT_FOUND, INSUFFICIENT_STOCK (qty below one or above stock) or STORAGE_FAILURE
*/
func (engine *Engine) UpdateQuantity(ctx context.Context, itemID string, quantidade int) (*Item, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	items, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	line := slice.Find(items, func(i Item) bool { return i.ID == itemID })
	if line == nil {
		return nil, apperr.NotFound("Item")
	}

	product, err := engine.products.FindByID(ctx, line.ProductID)
	if err != nil && !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}
	if product == nil || quantidade <= 0 || quantidade > product.Estoque {
		return nil, apperr.InsufficientStock(msgQuantity)
	}

	line.Quantidade = quantidade
	if err := engine.save(ctx, items); err != nil {
		return nil, err
	}

	updated := *line
	engine.logger.Info("cart_item_updated", slog.String("item_id", itemID), slog.Int("quantity", quantidade))
	return &updated, nil
}

// RemoveItem drops one line. Unknown ids are ignored.
func (engine *Engine) RemoveItem(ctx context.Context, itemID string) ([]Item, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	items, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	remaining := slice.Filter(items, func(i Item) bool { return i.ID != itemID })
	if err := engine.save(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// Clear empties the cart.
func (engine *Engine) Clear(ctx context.Context) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.save(ctx, []Item{})
}

// # Helpers

func snapshot(product *catalog.Product, input AddItemInput, clk clock.Clock) Item {
	return Item{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Nome:       product.Nome,
		Preco:      product.Preco,
		Imagem:     product.Imagem,
		Quantidade: input.Quantidade,
		Tamanho:    input.Tamanho,
		Cor:        input.Cor,
		AddedAt:    clk.Now(),
	}
}

func (engine *Engine) load(ctx context.Context) ([]Item, error) {
	items := []Item{}
	if _, err := kv.Load(ctx, engine.store, constants.KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (engine *Engine) save(ctx context.Context, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	return kv.Save(ctx, engine.store, constants.KeyCart, items)
}
