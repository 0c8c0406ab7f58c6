// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/logger"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/shop/cart"
	"github.com/taibuivan/lookeasy/internal/shop/checkout"
	"github.com/taibuivan/lookeasy/internal/shop/order"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/internal/users/session"
	"github.com/taibuivan/lookeasy/pkg/money"
)

type world struct {
	catalog  *catalog.Repository
	cart     *cart.Engine
	orders   *order.Engine
	sessions *session.Manager
	buyer    *account.User
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := kv.NewMemory()
	clk := clock.NewManual(time.Date(2026, 8, 3, 14, 0, 0, 0, time.UTC))
	log := logger.Discard()

	accounts := account.NewRepository(store, sec.NewPasswordHasher(4), clk, log)
	products := catalog.NewRepository(store, clk, log)

	buyer, err := accounts.Create(context.Background(), account.NewUser{Nome: "Cliente Teste", Email: "cliente@lookeasy.com", Senha: "cliente123"})
	require.NoError(t, err)

	return &world{
		catalog:  products,
		cart:     cart.NewEngine(store, products, clk, log),
		orders:   order.NewEngine(store, accounts, clk, log),
		sessions: session.NewManager(store, clk, log),
		buyer:    buyer,
	}
}

func (w *world) service(orders checkout.Orders) *checkout.Service {
	if orders == nil {
		orders = w.orders
	}
	return checkout.NewService(w.cart, w.catalog, orders, w.sessions, logger.Discard())
}

func (w *world) product(t *testing.T, nome, preco string, estoque int) *catalog.Product {
	t.Helper()
	p, err := w.catalog.Create(context.Background(), catalog.NewProduct{Nome: nome, Categoria: catalog.CategoryMasculino, Preco: money.MustParse(preco), Estoque: estoque})
	require.NoError(t, err)
	return p
}

func (w *world) stockOf(t *testing.T, id int) int {
	t.Helper()
	p, err := w.catalog.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Estoque
}

// failingOrders refuses every order.
type failingOrders struct{}

func (failingOrders) Create(context.Context, order.CreateInput) (*order.Order, error) {
	return nil, apperr.StorageFailure("lookEasyOrders", errors.New("disk full"))
}

/*
TestCheckout_TwoLines places an order and checks total, lines, stock and cart.
*/
func TestCheckout_TwoLines(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	a := w.product(t, "Camisa Social", "119.90", 5)
	b := w.product(t, "Bermuda", "79.95", 3)

	_, err := w.cart.AddItem(ctx, cart.AddItemInput{ProductID: a.ID, Quantidade: 2, Tamanho: "M"})
	require.NoError(t, err)
	_, err = w.cart.AddItem(ctx, cart.AddItemInput{ProductID: b.ID, Quantidade: 3, Tamanho: "G"})
	require.NoError(t, err)
	total, err := w.cart.Total(ctx)
	require.NoError(t, err)

	_, err = w.sessions.Create(ctx, w.buyer)
	require.NoError(t, err)

	placed, err := w.service(nil).Checkout(ctx)
	require.NoError(t, err)

	stored, err := w.orders.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Itens, 2)
	assert.Equal(t, "479.65", money.Format(stored.Total))
	assert.True(t, total.Equal(stored.Total), "stored %s, cart %s", stored.Total, total)
	assert.True(t, stored.Total.Equal(money.Sum(stored.Itens, order.Line.Subtotal)))
	assert.Equal(t, w.buyer.ID, stored.UserID)

	assert.Equal(t, 3, w.stockOf(t, a.ID))
	assert.Equal(t, 0, w.stockOf(t, b.ID))

	items, err := w.cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Editing the product afterwards leaves the order snapshot alone
	price := money.MustParse("1")
	_, err = w.catalog.Update(ctx, a.ID, catalog.Patch{Preco: &price})
	require.NoError(t, err)
	stored, err = w.orders.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "119.90", money.Format(stored.Itens[0].Preco))
}

/*
TestCheckout_AllOrNothing ensures one short line debits nothing.
*/
func TestCheckout_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	a := w.product(t, "Tênis", "299.90", 4)
	b := w.product(t, "Meia", "19.90", 2)

	_, err := w.cart.AddItem(ctx, cart.AddItemInput{ProductID: a.ID, Quantidade: 2})
	require.NoError(t, err)
	_, err = w.cart.AddItem(ctx, cart.AddItemInput{ProductID: b.ID, Quantidade: 2})
	require.NoError(t, err)
	_, err = w.sessions.Create(ctx, w.buyer)
	require.NoError(t, err)

	// Stock drops after the item went into the cart
	_, err = w.catalog.SetStock(ctx, b.ID, 1)
	require.NoError(t, err)

	_, err = w.service(nil).Checkout(ctx)
	require.True(t, apperr.Is(err, apperr.CodeInsufficientStock))
	assert.Len(t, apperr.As(err).Details, 1)

	assert.Equal(t, 4, w.stockOf(t, a.ID))
	assert.Equal(t, 1, w.stockOf(t, b.ID))

	items, err := w.cart.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2, "cart survives a failed checkout")
}

/*
TestCheckout_RestocksWhenOrderFails verifies the compensation path.
*/
func TestCheckout_RestocksWhenOrderFails(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	a := w.product(t, "Jaqueta", "249.90", 3)

	_, err := w.cart.AddItem(ctx, cart.AddItemInput{ProductID: a.ID, Quantidade: 2})
	require.NoError(t, err)
	_, err = w.sessions.Create(ctx, w.buyer)
	require.NoError(t, err)

	_, err = w.service(failingOrders{}).Checkout(ctx)
	require.True(t, apperr.Is(err, apperr.CodeStorageFailure))
	assert.Equal(t, 3, w.stockOf(t, a.ID))
}

/*
TestCheckout_Preconditions covers the empty cart and the missing session.
*/
func TestCheckout_Preconditions(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	a := w.product(t, "Cinto", "59.90", 3)

	_, err := w.service(nil).Checkout(ctx)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidOrder))

	_, err = w.cart.AddItem(ctx, cart.AddItemInput{ProductID: a.ID, Quantidade: 1})
	require.NoError(t, err)

	_, err = w.service(nil).Checkout(ctx)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthenticated))
	assert.Equal(t, 3, w.stockOf(t, a.ID))
}
