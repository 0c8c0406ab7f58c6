// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/shop/cart"
	"github.com/taibuivan/lookeasy/internal/shop/order"
	"github.com/taibuivan/lookeasy/pkg/money"
	"github.com/taibuivan/lookeasy/pkg/slice"
)

// # Cart

// cartView is the cart with its derived totals.
type cartView struct {
	Items     []cart.Item     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func viewCart(items []cart.Item) cartView {
	count := slice.Reduce(items, 0, func(acc int, item cart.Item) int { return acc + item.Quantidade })
	if items == nil {
		items = []cart.Item{}
	}
	return cartView{Items: items, Total: cart.Total(items), ItemCount: count}
}

func renderCart(view cartView) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ITEM\tPRODUTO\tNOME\tTAMANHO\tCOR\tQTD\tSUBTOTAL")
		for _, item := range view.Items {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%d\t%s\n",
				item.ID, item.ProductID, item.Nome, item.Tamanho, item.Cor, item.Quantidade, money.Format(item.Subtotal()))
		}
		fmt.Fprintf(w, "total\t\t\t\t\t%d\t%s\n", view.ItemCount, money.Format(view.Total))
	}
}

// NewCartCommand creates the cart command group.
func NewCartCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(
		newCartListCommand(opts),
		newCartAddCommand(opts),
		newCartUpdateCommand(opts),
		newCartRemoveCommand(opts),
		newCartClearCommand(opts),
	)
	return cmd
}

func newCartListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart and its total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				items, err := inv.app.Cart.Get(ctx)
				if err != nil {
					return err
				}
				view := viewCart(items)
				return inv.out.Success(view, renderCart(view))
			})
		},
	}
}

func newCartAddCommand(opts *RootOptions) *cobra.Command {
	var input cart.AddItemInput

	cmd := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product variant to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input.ProductID = id

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				if _, err := inv.app.Cart.AddItem(ctx, input); err != nil {
					return err
				}
				return printCart(ctx, inv)
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&input.Quantidade, "qtd", 1, "quantity")
	flags.StringVar(&input.Tamanho, "tamanho", "", "size")
	flags.StringVar(&input.Cor, "cor", "", "color")
	return cmd
}

func newCartUpdateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <itemId> <quantidade>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantidade, err := parseInt("quantidade", args[1])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				if _, err := inv.app.Cart.UpdateQuantity(ctx, args[0], quantidade); err != nil {
					return err
				}
				return printCart(ctx, inv)
			})
		},
	}
}

func newCartRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <itemId>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				items, err := inv.app.Cart.RemoveItem(ctx, args[0])
				if err != nil {
					return err
				}
				view := viewCart(items)
				return inv.out.Success(view, renderCart(view))
			})
		},
	}
}

func newCartClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				if err := inv.app.Cart.Clear(ctx); err != nil {
					return err
				}
				view := viewCart(nil)
				return inv.out.Success(view, renderCart(view))
			})
		},
	}
}

func printCart(ctx context.Context, inv *invocation) error {
	items, err := inv.app.Cart.Get(ctx)
	if err != nil {
		return err
	}
	view := viewCart(items)
	return inv.out.Success(view, renderCart(view))
}

// # Checkout

// NewCheckoutCommand creates the checkout command.
func NewCheckoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Turn the cart into an order for the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				placed, err := inv.app.Checkout.Checkout(ctx)
				if placed == nil && err != nil {
					return err
				}
				if perr := inv.out.Success(placed, renderOrder(placed)); perr != nil {
					return perr
				}
				// The order is placed even when the cart could not be emptied.
				return err
			})
		},
	}
}

// # Orders

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Browse and manage orders",
	}
	cmd.AddCommand(
		newOrdersListCommand(opts),
		newOrdersShowCommand(opts),
		newOrdersStatusCommand(opts),
		newOrdersCancelCommand(opts),
	)
	return cmd
}

func newOrdersListCommand(opts *RootOptions) *cobra.Command {
	var (
		userID int
		mine   bool
		pages  pageFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, all of them or those of one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byUser := cmd.Flags().Changed("user")
			pages.parse(cmd)

			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				if mine {
					identity, ok, err := inv.app.Auth.CurrentUser(ctx)
					if err != nil {
						return err
					}
					if !ok {
						return apperr.Unauthenticated("Faça login para ver seus pedidos")
					}
					userID, byUser = identity.ID, true
				}

				var (
					orders []order.Order
					err    error
				)
				if byUser {
					orders, err = inv.app.Orders.ListByUser(ctx, userID)
				} else {
					orders, err = inv.app.Orders.List(ctx)
				}
				if err != nil {
					return err
				}
				window, render := paginate(&pages, orders, renderOrders)
				return inv.out.Success(window, render)
			})
		},
	}

	pages.bind(cmd)
	cmd.Flags().IntVar(&userID, "user", 0, "orders of this account, newest first")
	cmd.Flags().BoolVar(&mine, "mine", false, "orders of the logged-in account")
	cmd.MarkFlagsMutuallyExclusive("user", "mine")
	return cmd
}

func newOrdersShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				found, err := inv.app.Orders.FindByID(ctx, id)
				if err != nil {
					return err
				}
				return inv.out.Success(found, renderOrder(found))
			})
		},
	}
}

func newOrdersStatusCommand(opts *RootOptions) *cobra.Command {
	statuses := slice.Map(order.Statuses, func(s order.Status) string { return string(s) })

	return &cobra.Command{
		Use:       "status <id> <status>",
		Short:     "Move an order to another status",
		Long:      "Move an order to another status: " + strings.Join(statuses, ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: statuses,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				updated, err := inv.app.Orders.SetStatus(ctx, id, order.Status(args[1]))
				if err != nil {
					return err
				}
				return inv.out.Success(updated, renderOrder(updated))
			})
		},
	}
}

func newOrdersCancelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, opts, func(ctx context.Context, inv *invocation) error {
				updated, err := inv.app.Orders.Cancel(ctx, id)
				if err != nil {
					return err
				}
				return inv.out.Success(updated, renderOrder(updated))
			})
		},
	}
}

func renderOrders(orders []order.Order) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ID\tCLIENTE\tITENS\tTOTAL\tSTATUS\tDATA")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
				o.ID, o.NomeCliente, len(o.Itens), money.Format(o.Total), o.Status, o.DataPedido.Format(time.DateOnly))
		}
	}
}

func renderOrder(o *order.Order) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "pedido:\t%d\n", o.ID)
		fmt.Fprintf(w, "cliente:\t%s <%s>\n", o.NomeCliente, o.EmailCliente)
		fmt.Fprintf(w, "status:\t%s\n", o.Status)
		fmt.Fprintf(w, "data:\t%s\n", o.DataPedido.Format(time.RFC3339))
		for _, line := range o.Itens {
			fmt.Fprintf(w, "  %d x %s\t%s %s\t%s\n", line.Quantidade, line.Nome, line.Tamanho, line.Cor, money.Format(line.Subtotal()))
		}
		fmt.Fprintf(w, "total:\t%s\n", money.Format(o.Total))
	}
}
