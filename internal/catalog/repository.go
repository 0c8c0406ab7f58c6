// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/validate"
	"github.com/taibuivan/lookeasy/pkg/slice"
)

// Repository implements the catalog use cases over the products document.
//
// # Concurrency
//
// Every mutation is a full read-modify-write of the document, serialized by mu.
type Repository struct {
	store  kv.Store
	clock  clock.Clock
	logger *slog.Logger
	mu     sync.Mutex
}

// NewRepository constructs a new [Repository].
func NewRepository(store kv.Store, clk clock.Clock, logger *slog.Logger) *Repository {
	return &Repository{store: store, clock: clk, logger: logger}
}

// # Reads

// List returns every product, inactive ones included (admin view).
func (repository *Repository) List(ctx context.Context) ([]Product, error) {
	return repository.load(ctx)
}

// ListActive returns the products visible in the storefront.
func (repository *Repository) ListActive(ctx context.Context) ([]Product, error) {
	products, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Filter(products, func(p Product) bool { return p.Ativo }), nil
}

/*
FindByID returns the product with the given id, active or not.

Returns:
  - *Product: a copy, mutating it does not touch the store
  - error: apperr.NotFound or STORAGE_FAILURE
*/
func (repository *Repository) FindByID(ctx context.Context, id int) (*Product, error) {
	products, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	index := indexOf(products, id)
	if index < 0 {
		return nil, apperr.NotFound("Produto")
	}
	return &products[index], nil
}

// ListByCategory returns the active products of one category.
func (repository *Repository) ListByCategory(ctx context.Context, categoria string) ([]Product, error) {
	return repository.Filter(ctx, Filter{Categoria: categoria})
}

// Filter applies the storefront criteria over the active products.
func (repository *Repository) Filter(ctx context.Context, filter Filter) ([]Product, error) {
	products, err := repository.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return filter.apply(products), nil
}

// ListLowStock returns active products whose stock is at or below min.
func (repository *Repository) ListLowStock(ctx context.Context, min int) ([]Product, error) {
	products, err := repository.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Filter(products, func(p Product) bool { return p.Estoque <= min }), nil
}

// # Admin Writes

/*
Create registers a new active product.

Description: Assigns id = max(id)+1 (1 on an empty catalog), stamps
dataCadastro and defaults categoria to "outros".

Returns:
  - *Product: Created entity
  - error: VALIDATION_ERROR or STORAGE_FAILURE
*/
func (repository *Repository) Create(ctx context.Context, input NewProduct) (*Product, error) {
	v := &validate.Validator{}
	v.Required("nome", input.Nome, "Nome é obrigatório").
		NonNegativeAmount("preco", input.Preco).
		NonNegative("estoque", input.Estoque)
	if err := v.Err(); err != nil {
		return nil, err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	products, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	categoria := strings.TrimSpace(input.Categoria)
	if categoria == "" {
		categoria = CategoryOutros
	}

	product := Product{
		ID:           nextID(products),
		Nome:         strings.TrimSpace(input.Nome),
		Categoria:    categoria,
		Preco:        input.Preco,
		Imagem:       input.Imagem,
		Estoque:      input.Estoque,
		Tamanhos:     nonNil(input.Tamanhos),
		Cores:        nonNil(input.Cores),
		Descricao:    input.Descricao,
		Ativo:        true,
		DataCadastro: repository.clock.Now(),
	}

	if err := repository.save(ctx, append(products, product)); err != nil {
		return nil, err
	}

	repository.logger.Info("product_created", slog.Int("product_id", product.ID), slog.String("nome", product.Nome))
	return &product, nil
}

// Update applies a partial set of changes to a product.
func (repository *Repository) Update(ctx context.Context, id int, patch Patch) (*Product, error) {
	v := &validate.Validator{}
	if patch.Nome != nil {
		v.Required("nome", *patch.Nome, "Nome é obrigatório")
	}
	if patch.Preco != nil {
		v.NonNegativeAmount("preco", *patch.Preco)
	}
	if patch.Estoque != nil {
		v.NonNegative("estoque", *patch.Estoque)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return repository.modify(ctx, id, func(product *Product) error {
		applyPatch(product, patch)
		return nil
	})
}

// Deactivate hides a product from the storefront. It is the only deletion path.
func (repository *Repository) Deactivate(ctx context.Context, id int) (*Product, error) {
	inactive := false
	return repository.Update(ctx, id, Patch{Ativo: &inactive})
}

// # Stock

// SetStock overwrites the stock of a product. Negative input floors to 0.
func (repository *Repository) SetStock(ctx context.Context, id int, quantidade int) (*Product, error) {
	if quantidade < 0 {
		quantidade = 0
	}
	return repository.modify(ctx, id, func(product *Product) error {
		product.Estoque = quantidade
		return nil
	})
}

/*
DecrementStock removes quantidade units from one product.

Description: Succeeds only when the current stock covers the request; otherwise
the product is left untouched and INSUFFICIENT_STOCK is returned.

Returns:
  - *Product: Updated entity
  - error: VALIDATION_ERROR, NOT_FOUND, INSUFFICIENT_STOCK or STORAGE_FAILURE
*/
func (repository *Repository) DecrementStock(ctx context.Context, id int, quantidade int) (*Product, error) {
	if quantidade <= 0 {
		return nil, apperr.ValidationError("Dados inválidos", apperr.FieldError{Field: "quantidade", Message: "Quantidade deve ser maior que zero"})
	}

	return repository.modify(ctx, id, func(product *Product) error {
		if product.Estoque < quantidade {
			return apperr.InsufficientStock("Estoque insuficiente para: " + product.Nome)
		}
		product.Estoque -= quantidade
		return nil
	})
}

/*
DebitStock removes the stock of several lines as one all-or-nothing step.

Description: Quantities of lines sharing a product are summed. Every line is
validated before anything is written; on any failure nothing changes and the
returned INSUFFICIENT_STOCK error lists every failing product in Details.
Missing and deactivated products fail as well.

Returns:
  - error: VALIDATION_ERROR, INSUFFICIENT_STOCK or STORAGE_FAILURE
*/
func (repository *Repository) DebitStock(ctx context.Context, lines []StockLine) error {
	if len(lines) == 0 {
		return nil
	}

	totals, order, err := aggregate(lines)
	if err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	products, err := repository.load(ctx)
	if err != nil {
		return err
	}

	// Phase 1: validate every line against the same snapshot
	var failures []apperr.FieldError
	for _, productID := range order {
		index := indexOf(products, productID)
		name := totals[productID].Nome

		switch {
		case index < 0 || !products[index].Ativo:
			failures = append(failures, apperr.FieldError{
				Field:   fmt.Sprintf("produto:%d", productID),
				Message: "Produto indisponível: " + name,
			})
		case products[index].Estoque < totals[productID].Quantidade:
			failures = append(failures, apperr.FieldError{
				Field:   fmt.Sprintf("produto:%d", productID),
				Message: "Estoque insuficiente para: " + products[index].Nome,
			})
		}
	}

	if len(failures) > 0 {
		repository.logger.Warn("stock_debit_rejected", slog.Int("failed_lines", len(failures)))
		return apperr.InsufficientStock(failures[0].Message, failures...)
	}

	// Phase 2: commit every decrement with a single write
	for _, productID := range order {
		products[indexOf(products, productID)].Estoque -= totals[productID].Quantidade
	}

	if err := repository.save(ctx, products); err != nil {
		return err
	}

	repository.logger.Info("stock_debited", slog.Int("products", len(order)))
	return nil
}

// RestockLines gives back the stock of previously debited lines.
// Missing products are skipped, there is nothing left to restore them to.
func (repository *Repository) RestockLines(ctx context.Context, lines []StockLine) error {
	if len(lines) == 0 {
		return nil
	}

	totals, order, err := aggregate(lines)
	if err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	products, err := repository.load(ctx)
	if err != nil {
		return err
	}

	for _, productID := range order {
		if index := indexOf(products, productID); index >= 0 {
			products[index].Estoque += totals[productID].Quantidade
		}
	}

	if err := repository.save(ctx, products); err != nil {
		return err
	}

	repository.logger.Info("stock_restored", slog.Int("products", len(order)))
	return nil
}

// # Persistence Helpers

// Replace overwrites the whole catalog. Used by seeding and backup import.
func (repository *Repository) Replace(ctx context.Context, products []Product) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.save(ctx, products)
}

// modify loads the catalog, applies change to one product and saves it back.
// An error from change aborts the write.
func (repository *Repository) modify(ctx context.Context, id int, change func(*Product) error) (*Product, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	products, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	index := indexOf(products, id)
	if index < 0 {
		return nil, apperr.NotFound("Produto")
	}

	if err := change(&products[index]); err != nil {
		return nil, err
	}

	if err := repository.save(ctx, products); err != nil {
		return nil, err
	}

	updated := products[index]
	repository.logger.Debug("product_updated", slog.Int("product_id", id))
	return &updated, nil
}

func (repository *Repository) load(ctx context.Context) ([]Product, error) {
	products := []Product{}
	if _, err := kv.Load(ctx, repository.store, constants.KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (repository *Repository) save(ctx context.Context, products []Product) error {
	if products == nil {
		products = []Product{}
	}
	return kv.Save(ctx, repository.store, constants.KeyProducts, products)
}

func applyPatch(product *Product, patch Patch) {
	if patch.Nome != nil {
		product.Nome = strings.TrimSpace(*patch.Nome)
	}
	if patch.Categoria != nil {
		product.Categoria = *patch.Categoria
	}
	if patch.Preco != nil {
		product.Preco = *patch.Preco
	}
	if patch.Imagem != nil {
		product.Imagem = *patch.Imagem
	}
	if patch.Estoque != nil {
		product.Estoque = *patch.Estoque
	}
	if patch.Tamanhos != nil {
		product.Tamanhos = nonNil(*patch.Tamanhos)
	}
	if patch.Cores != nil {
		product.Cores = nonNil(*patch.Cores)
	}
	if patch.Descricao != nil {
		product.Descricao = *patch.Descricao
	}
	if patch.Ativo != nil {
		product.Ativo = *patch.Ativo
	}
}

// aggregate sums quantities per product, keeping first-seen order.
func aggregate(lines []StockLine) (map[int]StockLine, []int, error) {
	totals := make(map[int]StockLine, len(lines))
	var order []int

	for _, line := range lines {
		if line.Quantidade <= 0 {
			return nil, nil, apperr.ValidationError("Dados inválidos", apperr.FieldError{
				Field:   fmt.Sprintf("produto:%d", line.ProductID),
				Message: "Quantidade deve ser maior que zero",
			})
		}

		current, seen := totals[line.ProductID]
		if !seen {
			order = append(order, line.ProductID)
			current = StockLine{ProductID: line.ProductID, Nome: line.Nome}
		}
		current.Quantidade += line.Quantidade
		totals[line.ProductID] = current
	}

	return totals, order, nil
}

func indexOf(products []Product, id int) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func nextID(products []Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func nonNil(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
