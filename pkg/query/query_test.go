// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lookeasy/pkg/query"
)

/*
TestStringSlice covers trimming and empty items.
*/
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"sizes", "P, M ,G", []string{"P", "M", "G"}},
		{"skips_empty_items", "Preto,,Branco,", []string{"Preto", "Branco"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.in))
		})
	}
}
