package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

// UpsertIdentity inserts or refreshes the identity fields of a user row.
// Profile fields set during onboarding are left untouched.
func (r *PGRepo) UpsertIdentity(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, external_id, email, full_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (external_id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.ExternalID,
		user.Email,
		nullableString(user.FullName),
	)
	return err
}

func (r *PGRepo) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	const query = `
SELECT id, external_id, email, full_name, industry, experience, skills, bio, created_at, updated_at
FROM users
WHERE external_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, externalID))
}

// UpdateProfile stores onboarding fields on an existing user row.
func (r *PGRepo) UpdateProfile(ctx context.Context, externalID string, profile Profile) (User, error) {
	const query = `
UPDATE users
SET industry = $1, experience = $2, skills = $3, bio = $4, updated_at = now()
WHERE external_id = $5
RETURNING id, external_id, email, full_name, industry, experience, skills, bio, created_at, updated_at`
	row := r.DB.QueryRowContext(ctx, query,
		nullableString(profile.Industry),
		profile.Experience,
		nullableString(joinSkills(profile.Skills)),
		nullableString(profile.Bio),
		externalID,
	)
	return r.scanOne(row)
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	var fullName sql.NullString
	var industry sql.NullString
	var experience sql.NullInt64
	var skills sql.NullString
	var bio sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.Email,
		&fullName,
		&industry,
		&experience,
		&skills,
		&bio,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if fullName.Valid {
		user.FullName = fullName.String
	}
	if industry.Valid {
		user.Industry = industry.String
	}
	if experience.Valid {
		user.Experience = int(experience.Int64)
	}
	if skills.Valid {
		user.Skills = splitSkills(skills.String)
	}
	if bio.Valid {
		user.Bio = bio.String
	}
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	} else {
		user.UpdatedAt = time.Now().UTC()
	}
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// Skills are stored as a single comma-joined column; order is preserved.
func joinSkills(skills []string) string {
	var kept []string
	for _, s := range skills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, ",")
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
