// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/catalog"
	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/pkg/money"
	"github.com/taibuivan/lookeasy/pkg/pointer"
	"github.com/taibuivan/lookeasy/pkg/query"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog and manage stock",
	}

	cmd.AddCommand(
		newProductsListCommand(opts),
		newProductsShowCommand(opts),
		newProductsCreateCommand(opts),
		newProductsUpdateCommand(opts),
		newProductsDeactivateCommand(opts),
		newProductsStockCommand(opts),
		newProductsLowStockCommand(opts),
	)
	return cmd
}

func newProductsListCommand(opts *RootOptions) *cobra.Command {
	var (
		filter   catalog.Filter
		min, max decimal.Decimal
		all      bool
		pages    pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List storefront products matching every given criterion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			filter.PrecoMin = pointer.When(flags.Changed("preco-min"), min)
			filter.PrecoMax = pointer.When(flags.Changed("preco-max"), max)
			pages.parse(cmd)

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				var (
					products []catalog.Product
					err      error
				)
				if all {
					products, err = inv.app.Catalog.List(ctx)
				} else {
					products, err = inv.app.Catalog.Filter(ctx, filter)
				}
				if err != nil {
					return err
				}
				window, render := paginate(&pages, products, renderProducts)
				return inv.out.Success(window, render)
			})
		},
	}

	pages.bind(cmd)
	flags := cmd.Flags()
	flags.StringVar(&filter.Categoria, "categoria", "", "exact category (todos disables it)")
	flags.StringVar(&filter.Genero, "genero", "", "feminino, masculino or outros")
	flags.Var(&amountFlag{&min}, "preco-min", "minimum price, inclusive")
	flags.Var(&amountFlag{&max}, "preco-max", "maximum price, inclusive")
	flags.StringVar(&filter.Tamanho, "tamanho", "", "offered size")
	flags.StringVar(&filter.Cor, "cor", "", "offered color")
	flags.StringVar(&filter.Busca, "busca", "", "text searched in nome and descricao")
	flags.BoolVar(&all, "all", false, "admin view: every product, inactive included, filters ignored")
	return cmd
}

func newProductsShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				product, err := inv.app.Catalog.FindByID(ctx, id)
				if err != nil {
					return err
				}
				return inv.out.Success(product, renderProduct(product))
			})
		},
	}
}

func newProductsCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		input           catalog.NewProduct
		tamanhos, cores string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Tamanhos = query.StringSlice(tamanhos)
			input.Cores = query.StringSlice(cores)

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				product, err := inv.app.Catalog.Create(ctx, input)
				if err != nil {
					return err
				}
				return inv.out.Success(product, renderProduct(product))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Nome, "nome", "", "product name")
	flags.StringVar(&input.Categoria, "categoria", "", "category (default outros)")
	flags.Var(&amountFlag{&input.Preco}, "preco", "unit price")
	flags.StringVar(&input.Imagem, "imagem", "", "image path")
	flags.IntVar(&input.Estoque, "estoque", 0, "initial stock")
	flags.StringVar(&tamanhos, "tamanhos", "", "comma-separated sizes")
	flags.StringVar(&cores, "cores", "", "comma-separated colors")
	flags.StringVar(&input.Descricao, "descricao", "", "description")
	return cmd
}

func newProductsUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		nome, categoria, imagem, descricao string
		tamanhos, cores                    string
		preco                              decimal.Decimal
		ativo                              bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			patch := catalog.Patch{
				Nome:      pointer.When(flags.Changed("nome"), nome),
				Categoria: pointer.When(flags.Changed("categoria"), categoria),
				Preco:     pointer.When(flags.Changed("preco"), preco),
				Imagem:    pointer.When(flags.Changed("imagem"), imagem),
				Tamanhos:  pointer.When(flags.Changed("tamanhos"), query.StringSlice(tamanhos)),
				Cores:     pointer.When(flags.Changed("cores"), query.StringSlice(cores)),
				Descricao: pointer.When(flags.Changed("descricao"), descricao),
				Ativo:     pointer.When(flags.Changed("ativo"), ativo),
			}

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				product, err := inv.app.Catalog.Update(ctx, id, patch)
				if err != nil {
					return err
				}
				return inv.out.Success(product, renderProduct(product))
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&nome, "nome", "", "product name")
	flags.StringVar(&categoria, "categoria", "", "category")
	flags.Var(&amountFlag{&preco}, "preco", "unit price")
	flags.StringVar(&imagem, "imagem", "", "image path")
	flags.StringVar(&tamanhos, "tamanhos", "", "comma-separated sizes")
	flags.StringVar(&cores, "cores", "", "comma-separated colors")
	flags.StringVar(&descricao, "descricao", "", "description")
	flags.BoolVar(&ativo, "ativo", true, "storefront visibility")
	return cmd
}

func newProductsDeactivateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Hide a product from the storefront",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				product, err := inv.app.Catalog.Deactivate(ctx, id)
				if err != nil {
					return err
				}
				return inv.out.Success(product, renderProduct(product))
			})
		},
	}
}

func newProductsStockCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stock <id> <quantidade>",
		Short: "Set the stock of a product (negative values clamp to 0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantidade, err := parseInt("quantidade", args[1])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				product, err := inv.app.Catalog.SetStock(ctx, id, quantidade)
				if err != nil {
					return err
				}
				return inv.out.Success(product, renderProduct(product))
			})
		},
	}
}

func newProductsLowStockCommand(opts *RootOptions) *cobra.Command {
	var min int

	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List active products at or below the stock threshold",
		Long:  "List active products at or below the stock threshold. Defaults to settings.sistema.estoqueMinimo.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("min")

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				threshold := min
				if !explicit {
					current, err := inv.app.Settings.Get(ctx)
					if err != nil {
						return err
					}
					threshold = current.Sistema.EstoqueMinimo
				}

				products, err := inv.app.Catalog.ListLowStock(ctx, threshold)
				if err != nil {
					return err
				}
				return inv.out.Success(products, renderProducts(products))
			})
		},
	}

	cmd.Flags().IntVar(&min, "min", 0, "stock threshold")
	return cmd
}

// # Rendering

func renderProducts(products []catalog.Product) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNOME\tCATEGORIA\tPRECO\tESTOQUE\tATIVO")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%t\n", p.ID, p.Nome, p.Categoria, money.Format(p.Preco), p.Estoque, p.Ativo)
		}
	}
}

func renderProduct(p *catalog.Product) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "id:\t%d\n", p.ID)
		fmt.Fprintf(w, "nome:\t%s\n", p.Nome)
		fmt.Fprintf(w, "categoria:\t%s\n", p.Categoria)
		fmt.Fprintf(w, "preco:\t%s\n", money.Format(p.Preco))
		fmt.Fprintf(w, "estoque:\t%d\n", p.Estoque)
		fmt.Fprintf(w, "tamanhos:\t%s\n", strings.Join(p.Tamanhos, ", "))
		fmt.Fprintf(w, "cores:\t%s\n", strings.Join(p.Cores, ", "))
		fmt.Fprintf(w, "ativo:\t%t\n", p.Ativo)
	}
}

// # Arguments

func parseID(raw string) (int, error) {
	return parseInt("id", raw)
}

// parseInt reports a malformed positional argument as a validation failure.
func parseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperr.ValidationError("Dados inválidos", apperr.FieldError{Field: field, Message: "Número inválido"})
	}
	return n, nil
}

// amountFlag binds a decimal amount such as "89.90" to a flag.
type amountFlag struct {
	value *decimal.Decimal
}

func (f *amountFlag) String() string {
	if f.value == nil {
		return "0"
	}
	return f.value.String()
}

func (f *amountFlag) Set(raw string) error {
	amount, err := money.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid amount %q", raw)
	}
	*f.value = amount
	return nil
}

func (f *amountFlag) Type() string {
	return "decimal"
}
