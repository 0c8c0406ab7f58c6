// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session owns the single active login of the process.

The slot is either absent or holds one Session. Expiry is lazy: a session past
its ExpiresAt is purged the next time it is read, there is no background sweep.
*/
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/internal/users/account"
)

// # Domain Entities

// Identity is the denormalized user projection carried by a session.
type Identity struct {
	ID    int          `json:"id"`
	Nome  string       `json:"nome"`
	Email string       `json:"email"`
	Role  sec.UserRole `json:"role"`
}

// Session is the logged-in state of the current shopper or administrator.
type Session struct {
	User      Identity  `json:"user"`
	LoginTime time.Time `json:"loginTime"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// # Manager

// Manager reads and writes the session slot.
type Manager struct {
	store  kv.Store
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
	mu     sync.Mutex
}

// NewManager constructs a [Manager] with the fixed [constants.SessionTTL].
func NewManager(store kv.Store, clk clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{store: store, clock: clk, ttl: constants.SessionTTL, logger: logger}
}

/*
Create opens a session for user, replacing any previous one.

Returns:
  - *Session: The stored session
  - error: STORAGE_FAILURE
*/
func (manager *Manager) Create(ctx context.Context, user *account.User) (*Session, error) {
	now := manager.clock.Now()
	session := Session{
		User: Identity{
			ID:    user.ID,
			Nome:  user.Nome,
			Email: user.Email,
			Role:  user.Role,
		},
		LoginTime: now,
		ExpiresAt: now.Add(manager.ttl),
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()

	if err := kv.Save(ctx, manager.store, constants.KeySession, session); err != nil {
		return nil, err
	}

	manager.logger.Info("session_created", slog.Int("user_id", user.ID), slog.Time("expires_at", session.ExpiresAt))
	return &session, nil
}

/*
Current returns the live session.

Description: An expired session is removed from the store as a side effect and
reported as absent. Reading again afterwards is still absent with no error.

Returns:
  - *Session: nil when absent
  - bool: whether a live session exists
  - error: STORAGE_FAILURE
*/
func (manager *Manager) Current(ctx context.Context) (*Session, bool, error) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	var session Session
	found, err := kv.Load(ctx, manager.store, constants.KeySession, &session)
	if err != nil || !found {
		return nil, false, err
	}

	if session.Expired(manager.clock.Now()) {
		if err := kv.Delete(ctx, manager.store, constants.KeySession); err != nil {
			return nil, false, err
		}
		manager.logger.Info("session_expired", slog.Int("user_id", session.User.ID))
		return nil, false, nil
	}

	return &session, true, nil
}

// Clear empties the slot. Clearing an absent session is not an error.
func (manager *Manager) Clear(ctx context.Context) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return kv.Delete(ctx, manager.store, constants.KeySession)
}

// ClearIfOwner empties the slot only when it belongs to userID.
func (manager *Manager) ClearIfOwner(ctx context.Context, userID int) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	var session Session
	found, err := kv.Load(ctx, manager.store, constants.KeySession, &session)
	if err != nil || !found || session.User.ID != userID {
		return err
	}

	manager.logger.Info("session_revoked", slog.Int("user_id", userID))
	return kv.Delete(ctx, manager.store, constants.KeySession)
}

// IsLoggedIn reports whether a live session exists.
func (manager *Manager) IsLoggedIn(ctx context.Context) (bool, error) {
	_, ok, err := manager.Current(ctx)
	return ok, err
}

// IsAdmin reports whether the live session belongs to an administrator.
func (manager *Manager) IsAdmin(ctx context.Context) (bool, error) {
	session, ok, err := manager.Current(ctx)
	if err != nil || !ok {
		return false, err
	}
	return session.User.Role == sec.RoleAdmin, nil
}
