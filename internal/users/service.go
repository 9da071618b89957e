package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the user identity from OAuth so that generated
// artifacts have a stable internal owner.
func (s *Service) UpsertFromAuth(ctx context.Context, externalID, email, fullName string) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(externalID) == "" || strings.TrimSpace(email) == "" {
		return errors.New("external id and email are required")
	}
	return s.Repo.UpsertIdentity(ctx, User{
		ID:         uuid.NewString(),
		ExternalID: externalID,
		Email:      email,
		FullName:   fullName,
	})
}

// GetByExternalID resolves the caller's profile from their session subject.
func (s *Service) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(externalID) == "" {
		return User{}, errors.New("external id is required")
	}
	return s.Repo.GetByExternalID(ctx, externalID)
}

// UpdateProfile stores onboarding fields for the caller.
func (s *Service) UpdateProfile(ctx context.Context, externalID string, profile Profile) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(externalID) == "" {
		return User{}, errors.New("external id is required")
	}
	if profile.Experience < 0 {
		return User{}, errors.New("experience must be non-negative")
	}
	return s.Repo.UpdateProfile(ctx, externalID, profile)
}
