// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
	"github.com/taibuivan/lookeasy/internal/platform/clock"
	"github.com/taibuivan/lookeasy/internal/platform/constants"
	"github.com/taibuivan/lookeasy/internal/platform/kv"
	"github.com/taibuivan/lookeasy/internal/platform/sec"
	"github.com/taibuivan/lookeasy/pkg/fold"
)

// # Repository

// Repository persists users in the users document.
//
// It rejects nothing on Create, uniqueness and shape checks are the caller's job.
type Repository struct {
	store  kv.Store
	hasher sec.PasswordHasher
	clock  clock.Clock
	logger *slog.Logger
	mu     sync.Mutex
}

// NewRepository constructs a new [Repository].
func NewRepository(store kv.Store, hasher sec.PasswordHasher, clk clock.Clock, logger *slog.Logger) *Repository {
	return &Repository{store: store, hasher: hasher, clock: clk, logger: logger}
}

// # Reads

// List returns every user, deactivated ones included.
func (repository *Repository) List(ctx context.Context) ([]User, error) {
	return repository.load(ctx)
}

// FindByID returns the user with the given id, active or not.
func (repository *Repository) FindByID(ctx context.Context, id int) (*User, error) {
	users, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperr.NotFound("Usuário")
}

// FindByEmail returns the active user owning email (case-folded).
func (repository *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	key := fold.Email(email)
	for i := range users {
		if users[i].Ativo && fold.Email(users[i].Email) == key {
			return &users[i], nil
		}
	}
	return nil, apperr.NotFound("Usuário")
}

/*
FindAnyByEmail looks an email up regardless of the active flag.

Description: An active match wins; otherwise the most recently created
deactivated match is returned. Login uses it to tell a wrong password apart
from a disabled account.
*/
func (repository *Repository) FindAnyByEmail(ctx context.Context, email string) (*User, error) {
	users, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	key := fold.Email(email)
	var inactive *User
	for i := range users {
		if fold.Email(users[i].Email) != key {
			continue
		}
		if users[i].Ativo {
			return &users[i], nil
		}
		inactive = &users[i]
	}

	if inactive == nil {
		return nil, apperr.NotFound("Usuário")
	}
	return inactive, nil
}

// EmailExists reports whether an active user owns email.
func (repository *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := repository.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if apperr.Is(err, apperr.CodeNotFound) {
		return false, nil
	}
	return false, err
}

// VerifyPassword compares a raw password with the user's stored digest.
func (repository *Repository) VerifyPassword(user *User, password string) bool {
	return repository.hasher.Check(password, user.Senha)
}

// # Writes

/*
Create enrolls a new active user.

Description: Assigns the next integer id, digests the password, folds the
email and stamps dataCriacao. Role defaults to "cliente".

Returns:
  - *User: Created entity
  - error: Hashing or STORAGE_FAILURE
*/
func (repository *Repository) Create(ctx context.Context, input NewUser) (*User, error) {
	digest, err := repository.hasher.Hash(input.Senha)
	if err != nil {
		return nil, fmt.Errorf("account_repository_hash_failed: %w", err)
	}

	role := input.Role
	if role == "" {
		role = sec.RoleCliente
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	users, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:          nextID(users),
		Nome:        strings.TrimSpace(input.Nome),
		Email:       fold.Email(input.Email),
		Senha:       digest,
		Role:        role,
		Ativo:       true,
		DataCriacao: repository.clock.Now(),
	}

	if err := repository.save(ctx, append(users, user)); err != nil {
		return nil, err
	}

	repository.logger.Info("user_created", slog.Int("user_id", user.ID), slog.String("role", string(user.Role)))
	return &user, nil
}

/*
Update merges patch over the stored user.

Description: A new raw password is re-digested before storage, callers never
pass a digest through this path.

Returns:
  - *User: Updated entity
  - error: NOT_FOUND, hashing or STORAGE_FAILURE
*/
func (repository *Repository) Update(ctx context.Context, id int, patch Patch) (*User, error) {

	// Hash outside the lock, bcrypt is slow on purpose
	var digest string
	if patch.Senha != nil {
		hashed, err := repository.hasher.Hash(*patch.Senha)
		if err != nil {
			return nil, fmt.Errorf("account_repository_hash_failed: %w", err)
		}
		digest = hashed
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	users, err := repository.load(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range users {
		if users[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperr.NotFound("Usuário")
	}

	user := &users[index]
	if patch.Nome != nil {
		user.Nome = strings.TrimSpace(*patch.Nome)
	}
	if patch.Email != nil {
		user.Email = fold.Email(*patch.Email)
	}
	if patch.Senha != nil {
		user.Senha = digest
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Ativo != nil {
		user.Ativo = *patch.Ativo
	}

	if err := repository.save(ctx, users); err != nil {
		return nil, err
	}

	updated := *user
	repository.logger.Info("user_updated", slog.Int("user_id", id))
	return &updated, nil
}

// Deactivate soft-deletes a user.
func (repository *Repository) Deactivate(ctx context.Context, id int) (*User, error) {
	inactive := false
	return repository.Update(ctx, id, Patch{Ativo: &inactive})
}

// Replace overwrites the whole users document. Used by seeding and backup import.
func (repository *Repository) Replace(ctx context.Context, users []User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.save(ctx, users)
}

// # Persistence Helpers

func (repository *Repository) load(ctx context.Context) ([]User, error) {
	users := []User{}
	if _, err := kv.Load(ctx, repository.store, constants.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (repository *Repository) save(ctx context.Context, users []User) error {
	if users == nil {
		users = []User{}
	}
	return kv.Save(ctx, repository.store, constants.KeyUsers, users)
}

func nextID(users []User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
