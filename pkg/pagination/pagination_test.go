// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lookeasy/pkg/pagination"
)

/*
TestNew_Clamps replaces out-of-range values.
*/
func TestNew_Clamps(t *testing.T) {
	assert.Equal(t, pagination.Params{Page: 1, Limit: 20}, pagination.New(0, -5))
	assert.Equal(t, pagination.Params{Page: 3, Limit: 100}, pagination.New(3, 500))
}

/*
TestSlice covers full, partial and out-of-range pages.
*/
func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
		pages int
	}{
		{"first_page", 1, 3, []int{1, 2, 3}, 3},
		{"last_partial_page", 3, 3, []int{7}, 3},
		{"past_the_end", 4, 3, []int{}, 3},
		{"everything", 1, 10, items, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := pagination.Slice(items, pagination.New(tt.page, tt.limit))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pages, meta.TotalPages)
			assert.Equal(t, len(items), meta.Total)
		})
	}
}
