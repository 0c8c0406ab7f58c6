// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/pkg/slice"
)

/*
TestFilter_EmptyResultIsArray ensures a filter that drops everything still encodes as [].
*/
func TestFilter_EmptyResultIsArray(t *testing.T) {
	out := slice.Filter([]int{1, 2, 3}, func(v int) bool { return v > 10 })

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
	assert.Nil(t, slice.Filter[int](nil, func(int) bool { return true }))
}

/*
TestMapReduce tests transformation and folding together.
*/
func TestMapReduce(t *testing.T) {
	doubled := slice.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := slice.Reduce(doubled, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 12, sum)
}

/*
TestFind_AliasesInput verifies that the returned pointer writes through.
*/
func TestFind_AliasesInput(t *testing.T) {
	values := []string{"P", "M", "G"}

	found := slice.Find(values, func(v string) bool { return v == "M" })
	require.NotNil(t, found)
	*found = "GG"
	assert.Equal(t, []string{"P", "GG", "G"}, values)

	assert.Nil(t, slice.Find(values, func(v string) bool { return v == "XG" }))
}
