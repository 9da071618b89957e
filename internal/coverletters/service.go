package coverletters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/shared/telemetry"
	"careercoach-backend/internal/users"
)

// GenerateInput carries the caller-supplied job fields.
type GenerateInput struct {
	JobTitle       string
	CompanyName    string
	JobDescription string
}

// Service contains business logic for cover letters. Every operation resolves
// the caller's profile first; failures short-circuit before any store write.
type Service struct {
	Repo  Repo
	Users *users.Service
	LLM   llm.Client
}

// Generate builds the prompt from the job fields and the caller's profile,
// runs the generator once, and persists the result.
func (s *Service) Generate(ctx context.Context, externalID string, input GenerateInput) (CoverLetter, error) {
	if err := s.ready(); err != nil {
		return CoverLetter{}, err
	}
	input.JobTitle = strings.TrimSpace(input.JobTitle)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.JobDescription = strings.TrimSpace(input.JobDescription)
	if input.JobTitle == "" || input.CompanyName == "" || input.JobDescription == "" {
		return CoverLetter{}, ErrInvalidInput
	}

	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return CoverLetter{}, err
	}

	prompt := llm.CoverLetterPrompt(profileOf(user), llm.CoverLetterInput{
		JobTitle:       input.JobTitle,
		CompanyName:    input.CompanyName,
		JobDescription: input.JobDescription,
	})

	content, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		telemetry.Error("coverletters.generate_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return CoverLetter{}, ErrGenerationFailed
	}

	letter := CoverLetter{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Content:        content,
		JobDescription: input.JobDescription,
		CompanyName:    input.CompanyName,
		JobTitle:       input.JobTitle,
		Status:         StatusCompleted,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, letter); err != nil {
		telemetry.Error("coverletters.create_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return CoverLetter{}, ErrPersistenceFailed
	}
	return letter, nil
}

// List returns the caller's cover letters, newest first.
func (s *Service) List(ctx context.Context, externalID string) ([]CoverLetter, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	letters, err := s.Repo.ListByUser(ctx, user.ID)
	if err != nil {
		telemetry.Error("coverletters.list_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, ErrPersistenceFailed
	}
	return letters, nil
}

// Get returns one cover letter by ID, scoped to the caller.
func (s *Service) Get(ctx context.Context, externalID, letterID string) (CoverLetter, error) {
	if err := s.ready(); err != nil {
		return CoverLetter{}, err
	}
	if strings.TrimSpace(letterID) == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return CoverLetter{}, err
	}
	letter, err := s.Repo.GetByID(ctx, user.ID, letterID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CoverLetter{}, ErrNotFound
		}
		telemetry.Error("coverletters.get_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return CoverLetter{}, ErrPersistenceFailed
	}
	return letter, nil
}

// Delete removes one cover letter by ID, scoped to the caller, and returns it.
func (s *Service) Delete(ctx context.Context, externalID, letterID string) (CoverLetter, error) {
	if err := s.ready(); err != nil {
		return CoverLetter{}, err
	}
	if strings.TrimSpace(letterID) == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	user, err := s.Users.GetByExternalID(ctx, externalID)
	if err != nil {
		return CoverLetter{}, err
	}
	letter, err := s.Repo.DeleteByID(ctx, user.ID, letterID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CoverLetter{}, ErrNotFound
		}
		telemetry.Error("coverletters.delete_failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return CoverLetter{}, ErrPersistenceFailed
	}
	return letter, nil
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil || s.Users == nil || s.LLM == nil {
		return errors.New("cover letters service not configured")
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
