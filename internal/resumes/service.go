package resumes

import (
	"context"
	"errors"
	"strings"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/shared/telemetry"
	"careercoach-backend/internal/users"
)

// Service contains business logic for resumes. Save and Get go through the
// store; the improve operations are pure transforms through the generator and
// never touch the store.
type Service struct {
	Repo  Repo
	Users *users.Service
	LLM   llm.Client
}

// Save upserts the caller's resume content.
func (s *Service) Save(ctx context.Context, externalID, content string) (Resume, error) {
	if err := s.ready(); err != nil {
		return Resume{}, err
	}
	if strings.TrimSpace(content) == "" {
		return Resume{}, ErrInvalidInput
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return Resume{}, err
	}
	resume, err := s.Repo.UpsertByUser(ctx, user.ID, content)
	if err != nil {
		telemetry.Error("resumes.save_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return Resume{}, ErrPersistenceFailed
	}
	return resume, nil
}

// Get returns the caller's resume.
func (s *Service) Get(ctx context.Context, externalID string) (Resume, error) {
	if err := s.ready(); err != nil {
		return Resume{}, err
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return Resume{}, err
	}
	resume, err := s.Repo.GetByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Resume{}, ErrNotFound
		}
		telemetry.Error("resumes.get_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return Resume{}, ErrPersistenceFailed
	}
	return resume, nil
}

// ImproveSection rewrites one resume section through the generator. No
// persistence side effect.
func (s *Service) ImproveSection(ctx context.Context, externalID, current, sectionType string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	current = strings.TrimSpace(current)
	sectionType = strings.TrimSpace(sectionType)
	if current == "" || sectionType == "" {
		return "", ErrInvalidInput
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return "", err
	}
	prompt := llm.ImproveSectionPrompt(profileOf(user), sectionType, current)
	return s.generate(ctx, user.ID, prompt)
}

// ImproveSummary rewrites the professional summary through the generator,
// constrained to roughly 70-75 words. No persistence side effect.
func (s *Service) ImproveSummary(ctx context.Context, externalID, current string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	current = strings.TrimSpace(current)
	if current == "" {
		return "", ErrInvalidInput
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return "", err
	}
	prompt := llm.ImproveSummaryPrompt(profileOf(user), current)
	return s.generate(ctx, user.ID, prompt)
}

func (s *Service) generate(ctx context.Context, userID, prompt string) (string, error) {
	content, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		telemetry.Error("resumes.improve_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", ErrGenerationFailed
	}
	return content, nil
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil || s.Users == nil || s.LLM == nil {
		return errors.New("resumes service not configured")
	}
	return nil
}

func profileOf(user users.User) llm.CandidateProfile {
	return llm.CandidateProfile{
		Industry:   user.Industry,
		Experience: user.Experience,
		Skills:     user.Skills,
		Bio:        user.Bio,
	}
}
