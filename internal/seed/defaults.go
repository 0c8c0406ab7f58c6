// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/shop/order"
	"github.com/taibuivan/lookeasy/internal/users/account"
	"github.com/taibuivan/lookeasy/pkg/money"
)

//go:embed data/products.yaml
var productsYAML []byte

// # Default Accounts

// DefaultUsers are the demo accounts created on a fresh store, in id order.
var DefaultUsers = []account.NewUser{
	{Nome: "Administrador", Email: "admin@lookeasy.com", Senha: "admin123", Role: sec.RoleAdmin},
	{Nome: "Cliente Teste", Email: "cliente@lookeasy.com", Senha: "cliente123", Role: sec.RoleCliente},
}

// DefaultProducts decodes the embedded catalog, every product active and
// registered at now.
func DefaultProducts(now time.Time) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := yaml.Unmarshal(productsYAML, &products); err != nil {
		return nil, fmt.Errorf("seed_products_decode_failed: %w", err)
	}

	for i := range products {
		products[i].Ativo = true
		products[i].DataCadastro = now
	}
	return products, nil
}

// DefaultOrders is one delivered order of the demo customer.
func DefaultOrders(now time.Time) []order.Order {
	return []order.Order{
		{
			ID:           1,
			UserID:       2,
			NomeCliente:  "Cliente Teste",
			EmailCliente: "cliente@lookeasy.com",
			Itens: []order.Line{
				{ProductID: 1, Nome: "Camiseta Premium", Preco: money.MustParse("89.90"), Quantidade: 1, Tamanho: "M", Cor: "Preto", Imagem: "img/camiseta_premium.png"},
			},
			Total:           money.MustParse("89.90"),
			Status:          order.StatusEntregue,
			DataPedido:      now.Add(-7 * 24 * time.Hour),
			DataAtualizacao: now.Add(-5 * 24 * time.Hour),
		},
	}
}
