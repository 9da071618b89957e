package resumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]Resume)}
}

// UpsertByUser creates the resume if absent, else replaces its content.
func (r *MemoryRepo) UpsertByUser(ctx context.Context, userID, content string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	resume, ok := r.byUser[userID]
	if !ok {
		resume = Resume{UserID: userID, CreatedAt: now}
	}
	resume.Content = content
	resume.UpdatedAt = now
	r.byUser[userID] = resume
	return resume, nil
}

// GetByUser returns the user's resume.
func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byUser[userID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

var _ Repo = (*MemoryRepo)(nil)
