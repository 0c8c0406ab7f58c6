// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package checkout turns the cart into an order.

The stock of every cart line is debited in one all-or-nothing step before the
order is written. If the order cannot be written the debit is given back, so a
failed checkout leaves the catalog as it found it.
*/
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/shop/cart"
	"github.com/taibuivan/lookeasy/internal/shop/order"
	"github.com/taibuivan/lookeasy/internal/users/session"
	"github.com/taibuivan/lookeasy/pkg/slice"
)

// # Contracts

// Cart is the cart surface checkout reads and clears.
type Cart interface {
	Get(ctx context.Context) ([]cart.Item, error)
	Clear(ctx context.Context) error
}

// Stock debits and restores catalog stock.
type Stock interface {
	DebitStock(ctx context.Context, lines []catalog.StockLine) error
	RestockLines(ctx context.Context, lines []catalog.StockLine) error
}

// Orders persists the placed order.
type Orders interface {
	Create(ctx context.Context, input order.CreateInput) (*order.Order, error)
}

// Sessions identifies the buyer.
type Sessions interface {
	Current(ctx context.Context) (*session.Session, bool, error)
}

// # Service

// Service runs the checkout protocol.
type Service struct {
	cart     Cart
	stock    Stock
	orders   Orders
	sessions Sessions
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(cart Cart, stock Stock, orders Orders, sessions Sessions, logger *slog.Logger) *Service {
	return &Service{cart: cart, stock: stock, orders: orders, sessions: sessions, logger: logger}
}

/*
Checkout places an order for the logged-in buyer with the current cart.

Description:
 1. An empty cart is INVALID_ORDER, no session is UNAUTHENTICATED.
 2. Every line is debited at once; one short line rejects all of them.
 3. The order is written with total equal to the cart total.
 4. The cart is emptied.

If step 3 fails, the debit of step 2 is restored. If step 4 fails the order
stands and is returned together with the error.

Returns:
  - *order.Order: The placed order
  - error: INVALID_ORDER, UNAUTHENTICATED, INSUFFICIENT_STOCK or STORAGE_FAILURE
*/
func (service *Service) Checkout(ctx context.Context) (*order.Order, error) {
	items, err := service.cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.InvalidOrder("Carrinho vazio")
	}

	current, ok, err := service.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthenticated("Faça login para finalizar a compra")
	}

	lines := slice.Map(items, func(i cart.Item) catalog.StockLine {
		return catalog.StockLine{ProductID: i.ProductID, Nome: i.Nome, Quantidade: i.Quantidade}
	})

	if err := service.stock.DebitStock(ctx, lines); err != nil {
		service.logger.Warn("checkout_stock_rejected", slog.Int("user_id", current.User.ID), slog.Any("error", err))
		return nil, err
	}

	placed, err := service.orders.Create(ctx, order.CreateInput{
		UserID: current.User.ID,
		Items:  items,
		Total:  cart.Total(items),
	})
	if err != nil {
		if restockErr := service.stock.RestockLines(ctx, lines); restockErr != nil {
			service.logger.Error("checkout_restock_failed", slog.Any("error", restockErr))
		}
		return nil, fmt.Errorf("checkout_order_create_failed: %w", err)
	}

	if err := service.cart.Clear(ctx); err != nil {
		service.logger.Error("checkout_cart_clear_failed", slog.Int("order_id", placed.ID), slog.Any("error", err))
		return placed, fmt.Errorf("checkout_cart_clear_failed: %w", err)
	}

	service.logger.Info("checkout_completed", slog.Int("order_id", placed.ID), slog.String("total", placed.Total.String()))
	return placed, nil
}
