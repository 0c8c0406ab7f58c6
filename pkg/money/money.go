// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package money holds the exact decimal helpers used for every preco and total.

Amounts are [decimal.Decimal] values. Importing this package switches decimal
JSON encoding to bare numbers, so stored documents keep "preco": 89.9 rather
than "preco": "89.9".
*/
package money

import (
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Times returns preco multiplied by quantidade.
func Times(preco decimal.Decimal, quantidade int) decimal.Decimal {
	return preco.Mul(decimal.NewFromInt(int64(quantidade)))
}

// Sum adds the amount of every element of items.
func Sum[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(amount(item))
	}
	return total
}

// Format renders an amount with two fraction digits ("89.90").
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Parse reads a decimal amount such as "89.90".
func Parse(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

// MustParse is [Parse] for literals known to be valid. It panics otherwise.
func MustParse(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
