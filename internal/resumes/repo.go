package resumes

import "context"

// Repo defines persistence operations for resumes. The owner's uniqueness is
// the upsert key; concurrent saves by the same user are last-write-wins.
type Repo interface {
	UpsertByUser(ctx context.Context, userID, content string) (Resume, error)
	GetByUser(ctx context.Context, userID string) (Resume, error)
}
