// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lookeasy/pkg/fold"
)

func TestEmail(t *testing.T) {
	assert.Equal(t, "cliente@lookeasy.com", fold.Email("  Cliente@LookEasy.COM "))
}

func TestContains(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{"Óculos de Sol Elegante", "oculos", true},
		{"Calça Jeans", "CALCA", true},
		{"Tênis Esportivo", "tenis esp", true},
		{"Vestido Summer", "jaqueta", false},
	}

	for _, tt := range tests {
		t.Run(tt.haystack+"/"+tt.needle, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.Contains(tt.haystack, tt.needle))
		})
	}
}
