package users

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User // keyed by external ID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) UpsertIdentity(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.users[user.ExternalID]
	if ok {
		existing.Email = user.Email
		existing.FullName = user.FullName
		existing.UpdatedAt = now
		r.users[user.ExternalID] = existing
		return nil
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ExternalID] = user
	return nil
}

func (r *MemoryRepo) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[externalID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) UpdateProfile(ctx context.Context, externalID string, profile Profile) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[externalID]
	if !ok {
		return User{}, ErrNotFound
	}
	user.Industry = profile.Industry
	user.Experience = profile.Experience
	user.Skills = append([]string(nil), profile.Skills...)
	user.Bio = profile.Bio
	user.UpdatedAt = time.Now().UTC()
	r.users[externalID] = user
	return user, nil
}
