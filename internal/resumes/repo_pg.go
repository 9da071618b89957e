package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// UpsertByUser creates the resume if absent, else replaces its content.
func (r *PGRepo) UpsertByUser(ctx context.Context, userID, content string) (Resume, error) {
	const query = `
INSERT INTO resumes (user_id, content, created_at, updated_at)
VALUES ($1, $2, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  content = EXCLUDED.content,
  updated_at = now()
RETURNING user_id, content, created_at, updated_at`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userID, content).Scan(
		&resume.UserID,
		&resume.Content,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// GetByUser returns the user's resume.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	const query = `
SELECT user_id, content, created_at, updated_at
FROM resumes
WHERE user_id = $1
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&resume.UserID,
		&resume.Content,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
