package coverletters_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/bootstrap"
	"careercoach-backend/internal/coverletters"
	sharedauth "careercoach-backend/internal/shared/auth"
	"careercoach-backend/internal/shared/config"
	"careercoach-backend/internal/users"
)

type fixedLLM struct {
	text  string
	calls int
}

func (f *fixedLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.text, nil
}

type countingRepo struct {
	coverletters.Repo
	calls int
}

func (r *countingRepo) Create(ctx context.Context, letter coverletters.CoverLetter) error {
	r.calls++
	return r.Repo.Create(ctx, letter)
}

func (r *countingRepo) ListByUser(ctx context.Context, userID string) ([]coverletters.CoverLetter, error) {
	r.calls++
	return r.Repo.ListByUser(ctx, userID)
}

func buildTestApp(t *testing.T, llmStub *fixedLLM) (*bootstrap.App, *countingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	repo := &countingRepo{Repo: app.CoverLettersRepo}
	app.CoverLettersService.Repo = repo
	app.CoverLettersService.LLM = llmStub
	app.ResumesService.LLM = llmStub
	return app, repo
}

func seedProfile(t *testing.T, app *bootstrap.App, externalID string) {
	t.Helper()
	ctx := context.Background()
	if err := app.UsersService.UpsertFromAuth(ctx, externalID, externalID+"@example.com", "Test User"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	_, err := app.UsersService.UpdateProfile(ctx, externalID, users.Profile{
		Industry:   "Tech",
		Experience: 5,
		Skills:     []string{"Go", "SQL"},
		Bio:        "Backend engineer",
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func bearerToken(t *testing.T, externalID string) string {
	t.Helper()
	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: externalID})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + token
}

func TestCoverLetterLifecycleOverHTTP(t *testing.T) {
	llmStub := &fixedLLM{text: "Dear Hiring Manager..."}
	app, _ := buildTestApp(t, llmStub)
	seedProfile(t, app, "google:owner")
	authz := bearerToken(t, "google:owner")

	// Generate.
	body, _ := json.Marshal(map[string]string{
		"jobTitle":       "Backend Engineer",
		"companyName":    "Acme",
		"jobDescription": "Build APIs",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cover-letters", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authz)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID      string `json:"id"`
		Content string `json:"content"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Status != "completed" {
		t.Fatalf("expected status completed, got %q", created.Status)
	}
	if created.Content != "Dear Hiring Manager..." {
		t.Fatalf("expected generator text, got %q", created.Content)
	}

	// List.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters", nil)
	reqList.Header.Set("Authorization", authz)
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var listed []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected one letter %q, got %+v", created.ID, listed)
	}

	// Get.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters/"+created.ID, nil)
	reqGet.Header.Set("Authorization", authz)
	respGet := httptest.NewRecorder()
	app.Router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	// Delete, then the letter is gone.
	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/cover-letters/"+created.ID, nil)
	reqDel.Header.Set("Authorization", authz)
	respDel := httptest.NewRecorder()
	app.Router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusOK {
		t.Fatalf("expected status 200 on delete, got %d", respDel.Code)
	}

	reqGone := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters/"+created.ID, nil)
	reqGone.Header.Set("Authorization", authz)
	respGone := httptest.NewRecorder()
	app.Router.ServeHTTP(respGone, reqGone)
	if respGone.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respGone.Code)
	}
}

func TestCrossOwnerGetReturnsNotFoundOverHTTP(t *testing.T) {
	llmStub := &fixedLLM{text: "Dear Hiring Manager..."}
	app, _ := buildTestApp(t, llmStub)
	seedProfile(t, app, "google:alice")
	seedProfile(t, app, "google:bob")

	letter, err := app.CoverLettersService.Generate(context.Background(), "google:alice", coverletters.GenerateInput{
		JobTitle:       "Backend Engineer",
		CompanyName:    "Acme",
		JobDescription: "Build APIs",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cover-letters/"+letter.ID, nil)
	req.Header.Set("Authorization", bearerToken(t, "google:bob"))
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for other owner, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("cross-owner access must read as plain absence, got code %q", body.Error.Code)
	}
}

func TestUnauthenticatedRequestsRejectedBeforeAnyCollaboratorCall(t *testing.T) {
	llmStub := &fixedLLM{text: "unused"}
	app, repo := buildTestApp(t, llmStub)
	seedProfile(t, app, "google:owner")

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/cover-letters"},
		{http.MethodGet, "/api/v1/cover-letters"},
		{http.MethodGet, "/api/v1/cover-letters/some-id"},
		{http.MethodDelete, "/api/v1/cover-letters/some-id"},
		{http.MethodPut, "/api/v1/resume"},
		{http.MethodGet, "/api/v1/resume"},
		{http.MethodPost, "/api/v1/resume/improve"},
		{http.MethodPost, "/api/v1/resume/improve-summary"},
	}
	for _, tc := range requests {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected status 401, got %d", tc.method, tc.path, resp.Code)
		}
	}

	if llmStub.calls != 0 {
		t.Fatalf("expected zero provider calls for unauthenticated requests, got %d", llmStub.calls)
	}
	if repo.calls != 0 {
		t.Fatalf("expected zero store calls for unauthenticated requests, got %d", repo.calls)
	}
}
