// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kv is the Store Adapter: a process-wide string key-value store holding
one JSON document per persisted collection.

Backends:

  - Memory: a mutex-guarded map, for tests and throwaway runs.
  - SQLite: an embedded file, the default (github.com/mattn/go-sqlite3).
  - Redis: a shared server (github.com/redis/go-redis/v9).

There is no cache in front of a backend. Every read re-fetches and every write
re-serializes the full document, so repositories never share in-memory copies
across calls.
*/
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
)

// Store is the minimal contract every backend satisfies.
//
// Get reports ok=false for a missing key. A backend failure is returned as err
// and must never be mistaken for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// # Document Helpers

// Load decodes the JSON document stored under key into dst.
//
// It returns found=false (and leaves dst untouched) when the key is absent.
// A backend failure or an undecodable document is a STORAGE_FAILURE.
func Load[T any](ctx context.Context, store Store, key string, dst *T) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, apperr.StorageFailure(key, fmt.Errorf("kv_get_failed: %w", err))
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, apperr.StorageFailure(key, fmt.Errorf("kv_decode_failed: %w", err))
	}
	return true, nil
}

// Save encodes v as JSON and writes it under key, replacing the whole document.
func Save[T any](ctx context.Context, store Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperr.StorageFailure(key, fmt.Errorf("kv_encode_failed: %w", err))
	}

	if err := store.Set(ctx, key, string(raw)); err != nil {
		return apperr.StorageFailure(key, fmt.Errorf("kv_set_failed: %w", err))
	}
	return nil
}

// Delete removes key. Removing a missing key is not an error.
func Delete(ctx context.Context, store Store, key string) error {
	if err := store.Remove(ctx, key); err != nil {
		return apperr.StorageFailure(key, fmt.Errorf("kv_remove_failed: %w", err))
	}
	return nil
}

// Exists reports whether key holds a document, without decoding it.
func Exists(ctx context.Context, store Store, key string) (bool, error) {
	_, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, apperr.StorageFailure(key, fmt.Errorf("kv_get_failed: %w", err))
	}
	return ok, nil
}
