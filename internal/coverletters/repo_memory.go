package coverletters

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores cover letters in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]CoverLetter
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]CoverLetter)}
}

// Create stores the cover letter.
func (r *MemoryRepo) Create(ctx context.Context, letter CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[letter.ID] = letter
	return nil
}

// GetByID returns a cover letter by ID for a user; other owners read absence.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	letter, ok := r.byID[letterID]
	if !ok || letter.UserID != userID {
		return CoverLetter{}, ErrNotFound
	}
	return letter, nil
}

// ListByUser returns cover letters for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []CoverLetter
	for _, letter := range r.byID {
		if letter.UserID == userID {
			out = append(out, letter)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteByID removes a cover letter and returns it, owner-scoped.
func (r *MemoryRepo) DeleteByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	letter, ok := r.byID[letterID]
	if !ok || letter.UserID != userID {
		return CoverLetter{}, ErrNotFound
	}
	delete(r.byID, letterID)
	return letter, nil
}

var _ Repo = (*MemoryRepo)(nil)
