// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package order owns placed orders.

An order is created from a cart snapshot and never deleted. Its lines and total
are copies taken at creation time, later catalog edits do not reach them. Only
the status changes afterwards.
*/
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/lookeasy/internal/shop/cart"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/pkg/money"
)

// # Status

// Status is the fulfilment stage of an order.
type Status string

const (
	StatusPendente    Status = "pendente"
	StatusProcessando Status = "processando"
	StatusEnviado     Status = "enviado"
	StatusEntregue    Status = "entregue"
	StatusCancelado   Status = "cancelado"
)

// Statuses lists every accepted status, in fulfilment order.
var Statuses = []Status{StatusPendente, StatusProcessando, StatusEnviado, StatusEntregue, StatusCancelado}

// Valid reports whether s is one of [Statuses].
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// # Domain Entities

// Line is the immutable copy of one cart line inside an order.
type Line struct {
	ProductID  int             `json:"productId" yaml:"productId"`
	Nome       string          `json:"nome" yaml:"nome"`
	Preco      decimal.Decimal `json:"preco" yaml:"preco"`
	Quantidade int             `json:"quantidade" yaml:"quantidade"`
	Tamanho    string          `json:"tamanho" yaml:"tamanho"`
	Cor        string          `json:"cor" yaml:"cor"`
	Imagem     string          `json:"imagem" yaml:"imagem"`
}

// Subtotal is preco times quantidade.
func (l Line) Subtotal() decimal.Decimal {
	return money.Times(l.Preco, l.Quantidade)
}

// Order is a placed purchase.
type Order struct {
	ID              int             `json:"id" yaml:"id"`
	UserID          int             `json:"userId" yaml:"userId"`
	NomeCliente     string          `json:"nomeCliente" yaml:"nomeCliente"`
	EmailCliente    string          `json:"emailCliente" yaml:"emailCliente"`
	Itens           []Line          `json:"itens" yaml:"itens"`
	Total           decimal.Decimal `json:"total" yaml:"total"`
	Status          Status          `json:"status" yaml:"status"`
	DataPedido      time.Time       `json:"dataPedido" yaml:"dataPedido"`
	DataAtualizacao time.Time       `json:"dataAtualizacao" yaml:"dataAtualizacao"`
}

// CreateInput carries a cart snapshot and its total at checkout time.
// Total is stored as given, it is not recomputed from Items.
type CreateInput struct {
	UserID int
	Items  []cart.Item
	Total  decimal.Decimal
}

// # Contracts

// Users is the account lookup the order engine depends on.
type Users interface {
	FindByID(ctx context.Context, id int) (*account.User, error)
}

func lineFrom(item cart.Item) Line {
	return Line{
		ProductID:  item.ProductID,
		Nome:       item.Nome,
		Preco:      item.Preco,
		Quantidade: item.Quantidade,
		Tamanho:    item.Tamanho,
		Cor:        item.Cor,
		Imagem:     item.Imagem,
	}
}
