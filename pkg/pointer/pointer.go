// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer builds the optional fields of partial updates.

Every Patch type of the data layer uses nil for "leave unchanged", so callers
need a terse way to turn a literal or a flag value into a pointer.
*/
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// When returns a pointer to v if set is true and nil otherwise.
//
// It maps "was this flag given" onto a Patch field:
//
//	patch.Preco = pointer.When(flags.Changed("preco"), preco)
func When[T any](set bool, v T) *T {
	if !set {
		return nil
	}
	return &v
}
