// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
)

/*
TestAs_TraversesWrapping verifies that wrapped AppErrors are still classified.
*/
func TestAs_TraversesWrapping(t *testing.T) {
	err := fmt.Errorf("cart_engine_add_failed: %w", apperr.InsufficientStock("Estoque insuficiente"))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInsufficientStock, ae.Code)
	assert.True(t, apperr.Is(err, apperr.CodeInsufficientStock))
	assert.False(t, apperr.Is(err, apperr.CodeNotFound))
	assert.True(t, apperr.IsAppError(err))
}

/*
TestStorageFailure_KeepsCause ensures the infrastructure cause stays reachable for logs.
*/
func TestStorageFailure_KeepsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := apperr.StorageFailure("lookEasyProducts", cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "disk")
	assert.Contains(t, err.Error(), "lookEasyProducts")
}

/*
TestAs_PlainError returns nil for errors outside the taxonomy.
*/
func TestAs_PlainError(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("boom")))
	assert.False(t, apperr.Is(nil, apperr.CodeNotFound))
}
