package resumes

import "time"

// Resume is the single stored resume of a user. The owner reference is the
// primary key, so repeated saves overwrite in place instead of accumulating
// history.
type Resume struct {
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
