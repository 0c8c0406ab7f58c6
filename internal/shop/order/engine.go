// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/validate"
	"github.com/taibuivan/lookeasy/pkg/slice"
)

const (
	msgInvalidOrder = "Dados inválidos para criar pedido"
	msgStatus       = "Deve ser um de: pendente, processando, enviado, entregue, cancelado"
)

// Engine owns the orders document.
type Engine struct {
	store  kv.Store
	users  Users
	clock  clock.Clock
	logger *slog.Logger
	mu     sync.Mutex
}

// NewEngine constructs a new [Engine].
func NewEngine(store kv.Store, users Users, clk clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{store: store, users: users, clock: clk, logger: logger}
}

// # Reads

// List returns every order in creation order.
func (engine *Engine) List(ctx context.Context) ([]Order, error) {
	return engine.load(ctx)
}

// FindByID returns one order.
func (engine *Engine) FindByID(ctx context.Context, id int) (*Order, error) {
	orders, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	found := slice.Find(orders, func(o Order) bool { return o.ID == id })
	if found == nil {
		return nil, apperr.NotFound("Pedido")
	}
	return found, nil
}

// ListByUser returns the orders of userID, newest first.
func (engine *Engine) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	orders, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	mine := slice.Filter(orders, func(o Order) bool { return o.UserID == userID })
	slices.SortStableFunc(mine, func(a, b Order) int {
		if c := b.DataPedido.Compare(a.DataPedido); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return mine, nil
}

// # Writes

/*
Create places an order from a cart snapshot.

Description: The buyer's name and email are copied in, every cart line becomes
an immutable order line, and the caller's total is stored as is. Stock is not
touched here, see the checkout package.

Returns:
  - *Order: The pending order
  - error: INVALID_ORDER (unknown user, empty snapshot) or STORAGE_FAILURE
*/
func (engine *Engine) Create(ctx context.Context, input CreateInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, apperr.InvalidOrder(msgInvalidOrder)
	}

	user, err := engine.users.FindByID(ctx, input.UserID)
	if apperr.Is(err, apperr.CodeNotFound) {
		return nil, apperr.InvalidOrder(msgInvalidOrder)
	}
	if err != nil {
		return nil, err
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()

	orders, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	now := engine.clock.Now()
	order := Order{
		ID:              nextID(orders),
		UserID:          user.ID,
		NomeCliente:     user.Nome,
		EmailCliente:    user.Email,
		Itens:           slice.Map(input.Items, lineFrom),
		Total:           input.Total,
		Status:          StatusPendente,
		DataPedido:      now,
		DataAtualizacao: now,
	}

	if err := engine.save(ctx, append(orders, order)); err != nil {
		return nil, err
	}

	engine.logger.Info("order_created",
		slog.Int("order_id", order.ID),
		slog.Int("user_id", order.UserID),
		slog.Int("lines", len(order.Itens)),
		slog.String("total", order.Total.String()),
	)
	return &order, nil
}

/*
SetStatus moves an order to status.

Description: Any known status may follow any other. An unknown value is a
VALIDATION_ERROR.

Returns:
  - *Order: Updated order
  - error: VALIDATION_ERROR, NOT_FOUND or STORAGE_FAILURE
*/
func (engine *Engine) SetStatus(ctx context.Context, id int, status Status) (*Order, error) {
	v := &validate.Validator{}
	if err := v.Custom("status", !status.Valid(), msgStatus).Err(); err != nil {
		return nil, err
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()

	orders, err := engine.load(ctx)
	if err != nil {
		return nil, err
	}

	found := slice.Find(orders, func(o Order) bool { return o.ID == id })
	if found == nil {
		return nil, apperr.NotFound("Pedido")
	}

	previous := found.Status
	found.Status = status
	found.DataAtualizacao = engine.clock.Now()

	if err := engine.save(ctx, orders); err != nil {
		return nil, err
	}

	engine.logger.Info("order_status_changed",
		slog.Int("order_id", id),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)
	updated := *found
	return &updated, nil
}

// Cancel is SetStatus with [StatusCancelado].
func (engine *Engine) Cancel(ctx context.Context, id int) (*Order, error) {
	return engine.SetStatus(ctx, id, StatusCancelado)
}

// Replace overwrites the whole orders document. Used by seeding.
func (engine *Engine) Replace(ctx context.Context, orders []Order) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.save(ctx, orders)
}

// # Persistence Helpers

func (engine *Engine) load(ctx context.Context) ([]Order, error) {
	orders := []Order{}
	if _, err := kv.Load(ctx, engine.store, constants.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (engine *Engine) save(ctx context.Context, orders []Order) error {
	if orders == nil {
		orders = []Order{}
	}
	return kv.Save(ctx, engine.store, constants.KeyOrders, orders)
}

func nextID(orders []Order) int {
	return slice.Reduce(orders, 0, func(max int, o Order) int {
		if o.ID > max {
			return o.ID
		}
		return max
	}) + 1
}
