// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination pages through in-memory collections for list commands.
//
// # Overview
//
// Every collection of the data layer is loaded whole from the store, so paging
// is a window over a slice rather than a query OFFSET.
package pagination

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds a requested page and page size.
type Params struct {
	Page  int
	Limit int
}

// New clamps page and limit. Values below one fall back to the defaults and
// limit is capped at [MaxLimit].
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the index of the first item of the page.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes the page that was returned.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta constructs pagination metadata.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Slice returns the window of items selected by p. A page past the end is empty.
func Slice[T any](items []T, p Params) ([]T, Meta) {
	meta := NewMeta(p.Page, p.Limit, len(items))

	start := min(p.Offset(), len(items))
	end := min(start+p.Limit, len(items))
	return items[start:end], meta
}
