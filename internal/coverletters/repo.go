package coverletters

import "context"

// Repo defines persistence operations for cover letters. GetByID and
// DeleteByID are owner-scoped: an ID belonging to another user behaves
// exactly like a missing ID.
type Repo interface {
	Create(ctx context.Context, letter CoverLetter) error
	GetByID(ctx context.Context, userID, letterID string) (CoverLetter, error)
	ListByUser(ctx context.Context, userID string) ([]CoverLetter, error)
	DeleteByID(ctx context.Context, userID, letterID string) (CoverLetter, error)
}
