package resumes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careercoach-backend/internal/users"
)

type stubLLM struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type countingRepo struct {
	Repo
	upserts int
	gets    int
}

func (r *countingRepo) UpsertByUser(ctx context.Context, userID, content string) (Resume, error) {
	r.upserts++
	return r.Repo.UpsertByUser(ctx, userID, content)
}

func (r *countingRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	r.gets++
	return r.Repo.GetByUser(ctx, userID)
}

func newTestService(t *testing.T, llmStub *stubLLM) (*Service, *countingRepo) {
	t.Helper()
	usersRepo := users.NewMemoryRepo()
	usersSvc := users.NewService(usersRepo)
	ctx := context.Background()
	if err := usersSvc.UpsertFromAuth(ctx, "google:owner", "owner@example.com", "Test User"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := usersSvc.UpdateProfile(ctx, "google:owner", users.Profile{
		Industry:   "Tech",
		Experience: 5,
		Skills:     []string{"Go", "SQL"},
		Bio:        "Backend engineer",
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	repo := &countingRepo{Repo: NewMemoryRepo()}
	return &Service{Repo: repo, Users: usersSvc, LLM: llmStub}, repo
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t, &stubLLM{})
	ctx := context.Background()

	saved, err := svc.Save(ctx, "google:owner", "# My Resume\nBackend engineer.")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Content != "# My Resume\nBackend engineer." {
		t.Fatalf("saved content mismatch: %q", saved.Content)
	}

	got, err := svc.Get(ctx, "google:owner")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != saved.Content {
		t.Fatalf("round-trip mismatch: %q vs %q", got.Content, saved.Content)
	}
}

func TestSaveOverwritesInPlace(t *testing.T) {
	svc, repo := newTestService(t, &stubLLM{})
	ctx := context.Background()

	first, err := svc.Save(ctx, "google:owner", "v1")
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := svc.Save(ctx, "google:owner", "v1")
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if second.UserID != first.UserID {
		t.Fatalf("upsert must keep the same owner row")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("upsert must not reset creation time")
	}
	if repo.upserts != 2 {
		t.Fatalf("expected 2 upsert calls, got %d", repo.upserts)
	}

	got, err := svc.Get(ctx, "google:owner")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "v1" {
		t.Fatalf("expected single row with content v1, got %q", got.Content)
	}
}

func TestGetWithoutResume(t *testing.T) {
	svc, _ := newTestService(t, &stubLLM{})

	_, err := svc.Get(context.Background(), "google:owner")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestImproveSummaryNeverTouchesStore(t *testing.T) {
	llmStub := &stubLLM{text: "Seasoned backend engineer with 5 years of experience."}
	svc, repo := newTestService(t, llmStub)

	content, err := svc.ImproveSummary(context.Background(), "google:owner", "Led a team")
	if err != nil {
		t.Fatalf("ImproveSummary: %v", err)
	}
	if content != llmStub.text {
		t.Fatalf("expected generator text, got %q", content)
	}
	if repo.upserts != 0 || repo.gets != 0 {
		t.Fatalf("improve must not call the store: upserts=%d gets=%d", repo.upserts, repo.gets)
	}
	if len(llmStub.prompts) != 1 || !strings.Contains(llmStub.prompts[0], "70-75 words") {
		t.Fatalf("summary prompt missing word ceiling: %v", llmStub.prompts)
	}
}

func TestImproveSectionUsesTypeInPrompt(t *testing.T) {
	llmStub := &stubLLM{text: "Delivered APIs serving 1M requests/day."}
	svc, repo := newTestService(t, llmStub)

	content, err := svc.ImproveSection(context.Background(), "google:owner", "Built APIs", "experience")
	if err != nil {
		t.Fatalf("ImproveSection: %v", err)
	}
	if content != llmStub.text {
		t.Fatalf("expected generator text, got %q", content)
	}
	if repo.upserts != 0 || repo.gets != 0 {
		t.Fatalf("improve must not call the store: upserts=%d gets=%d", repo.upserts, repo.gets)
	}
	prompt := llmStub.prompts[0]
	for _, want := range []string{"experience", "Tech", `"Built APIs"`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("section prompt missing %q", want)
		}
	}
}

func TestImproveProviderFailure(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("transient network error")}
	svc, _ := newTestService(t, llmStub)

	_, err := svc.ImproveSummary(context.Background(), "google:owner", "Led a team")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestUnknownUserShortCircuitsBeforeProvider(t *testing.T) {
	llmStub := &stubLLM{text: "unused"}
	svc, repo := newTestService(t, llmStub)

	_, err := svc.ImproveSummary(context.Background(), "google:stranger", "Led a team")
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected users.ErrNotFound, got %v", err)
	}
	if llmStub.calls != 0 {
		t.Fatalf("expected no provider call, got %d", llmStub.calls)
	}
	if repo.upserts != 0 || repo.gets != 0 {
		t.Fatalf("expected no store call, got upserts=%d gets=%d", repo.upserts, repo.gets)
	}
}
