package llm

import (
	"strings"
	"testing"
)

func testProfile() CandidateProfile {
	return CandidateProfile{
		Industry:   "Tech",
		Experience: 5,
		Skills:     []string{"Go", "SQL"},
		Bio:        "Backend engineer",
	}
}

func TestCoverLetterPromptContainsJobAndProfileFields(t *testing.T) {
	prompt := CoverLetterPrompt(testProfile(), CoverLetterInput{
		JobTitle:       "Backend Engineer",
		CompanyName:    "Acme",
		JobDescription: "Build APIs",
	})

	for _, want := range []string{
		"Backend Engineer",
		"Acme",
		"Build APIs",
		"Tech",
		"Years of Experience: 5",
		"Go, SQL",
		"Backend engineer",
		"max 200 words",
		"markdown",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("cover letter prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestImproveSectionPromptContainsTypeAndContent(t *testing.T) {
	prompt := ImproveSectionPrompt(testProfile(), "experience", "Led a team")

	for _, want := range []string{
		"experience",
		"Tech",
		`"Led a team"`,
		"action verbs",
		"single paragraph",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("improve section prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestImproveSummaryPromptHasWordCeiling(t *testing.T) {
	prompt := ImproveSummaryPrompt(testProfile(), "Led a team")

	for _, want := range []string{
		"70-75 words",
		`"Led a team"`,
		"Tech",
		"single paragraph",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("improve summary prompt missing %q:\n%s", want, prompt)
		}
	}
}
