// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taibuivan/lookeasy/pkg/pagination"
)

// pageFlags adds --page and --limit to a list command. Lists are unpaged
// unless one of them is given.
type pageFlags struct {
	page, limit int
	enabled     bool
}

func (p *pageFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.page, "page", pagination.DefaultPage, "page number, 1-indexed")
	cmd.Flags().IntVar(&p.limit, "limit", pagination.DefaultLimit, fmt.Sprintf("items per page, at most %d", pagination.MaxLimit))
}

// parse records whether paging was requested. Call it from RunE.
func (p *pageFlags) parse(cmd *cobra.Command) {
	p.enabled = cmd.Flags().Changed("page") || cmd.Flags().Changed("limit")
}

// paginate cuts items to the requested page and decorates render with a footer.
func paginate[T any](p *pageFlags, items []T, render func([]T) func(io.Writer)) ([]T, func(io.Writer)) {
	if !p.enabled {
		return items, render(items)
	}

	window, meta := pagination.Slice(items, pagination.New(p.page, p.limit))
	draw := render(window)
	return window, func(w io.Writer) {
		draw(w)
		fmt.Fprintf(w, "page %d/%d\t(%d total)\n", meta.Page, meta.TotalPages, meta.Total)
	}
}
