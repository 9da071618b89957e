package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a cover letter.
func (r *PGRepo) Create(ctx context.Context, letter CoverLetter) error {
	const query = `
INSERT INTO cover_letters (
    id, user_id, content, job_description, company_name, job_title, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.UserID,
		letter.Content,
		letter.JobDescription,
		letter.CompanyName,
		letter.JobTitle,
		letter.Status,
		letter.CreatedAt,
	)
	return err
}

// GetByID returns a cover letter by ID for a user. Ownership is checked
// after the fetch; a mismatch reads the same as absence.
func (r *PGRepo) GetByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	const query = `
SELECT id, user_id, content, job_description, company_name, job_title, status, created_at
FROM cover_letters
WHERE id = $1
LIMIT 1`
	var letter CoverLetter
	err := r.DB.QueryRowContext(ctx, query, letterID).Scan(
		&letter.ID,
		&letter.UserID,
		&letter.Content,
		&letter.JobDescription,
		&letter.CompanyName,
		&letter.JobTitle,
		&letter.Status,
		&letter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	if letter.UserID != userID {
		return CoverLetter{}, ErrNotFound
	}
	return letter, nil
}

// ListByUser lists cover letters ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	const query = `
SELECT id, user_id, content, job_description, company_name, job_title, status, created_at
FROM cover_letters
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoverLetter
	for rows.Next() {
		var letter CoverLetter
		if err := rows.Scan(
			&letter.ID,
			&letter.UserID,
			&letter.Content,
			&letter.JobDescription,
			&letter.CompanyName,
			&letter.JobTitle,
			&letter.Status,
			&letter.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, letter)
	}
	return out, rows.Err()
}

// DeleteByID removes a cover letter and returns it. The ownership check runs
// before the delete so a cross-owner request never mutates anything.
func (r *PGRepo) DeleteByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	letter, err := r.GetByID(ctx, userID, letterID)
	if err != nil {
		return CoverLetter{}, err
	}
	const query = `DELETE FROM cover_letters WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, letterID, userID)
	if err != nil {
		return CoverLetter{}, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		// Raced with another delete of the same letter.
		return CoverLetter{}, ErrNotFound
	}
	return letter, nil
}

var _ Repo = (*PGRepo)(nil)
