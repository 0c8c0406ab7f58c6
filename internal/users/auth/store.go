// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
)

// # Pending Reset Request

// ResetRequest is the single pending password reset.
//
// Only the SHA-256 of the token is stored, the raw token leaves the process
// through the [ResetNotifier].
type ResetRequest struct {
	UserID    int       `json:"userId"`
	TokenHash string    `json:"tokenHash"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ResetStore persists the reset-request slot. A new request overwrites the previous one.
type ResetStore struct {
	store kv.Store
	mu    sync.Mutex
}

// NewResetStore constructs a new [ResetStore].
func NewResetStore(store kv.Store) *ResetStore {
	return &ResetStore{store: store}
}

// Save overwrites the slot with request.
func (repository *ResetStore) Save(ctx context.Context, request ResetRequest) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return kv.Save(ctx, repository.store, constants.KeyPasswordReset, request)
}

// Load returns the pending request, if any.
func (repository *ResetStore) Load(ctx context.Context) (*ResetRequest, bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var request ResetRequest
	found, err := kv.Load(ctx, repository.store, constants.KeyPasswordReset, &request)
	if err != nil || !found {
		return nil, false, err
	}
	return &request, true, nil
}

// Clear empties the slot.
func (repository *ResetStore) Clear(ctx context.Context) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return kv.Delete(ctx, repository.store, constants.KeyPasswordReset)
}

// # Login Throttle

// LoginBucket is the token bucket of the login limiter as last observed.
type LoginBucket struct {
	Tokens float64   `json:"tokens"`
	At     time.Time `json:"at"`
}

// ThrottleStore keeps the login bucket in the store, so consecutive
// processes share one limit instead of each starting with a full burst.
type ThrottleStore struct {
	store kv.Store
	mu    sync.Mutex
}

// NewThrottleStore constructs a new [ThrottleStore].
func NewThrottleStore(store kv.Store) *ThrottleStore {
	return &ThrottleStore{store: store}
}

/*
Allow takes one login token at now from the persisted bucket.

Description: Rebuilds a limiter with the given policy, drains it to the
stored token count, spends one token and writes the bucket back. A refused
attempt is written back too, it only refills with time.

Returns:
  - bool: Whether the attempt may proceed
  - error: STORAGE_FAILURE
*/
func (repository *ThrottleStore) Allow(ctx context.Context, limit rate.Limit, burst int, now time.Time) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	limiter := rate.NewLimiter(limit, burst)

	var bucket LoginBucket
	found, err := kv.Load(ctx, repository.store, constants.KeyLoginThrottle, &bucket)
	if err != nil {
		return false, err
	}
	if found {
		if spent := int(math.Ceil(float64(burst) - bucket.Tokens)); spent > 0 {
			limiter.ReserveN(bucket.At, min(spent, burst))
		}
	}

	allowed := limiter.AllowN(now, 1)

	bucket = LoginBucket{Tokens: limiter.TokensAt(now), At: now}
	if err := kv.Save(ctx, repository.store, constants.KeyLoginThrottle, bucket); err != nil {
		return false, err
	}
	return allowed, nil
}
