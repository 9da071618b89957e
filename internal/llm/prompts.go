package llm

import (
	"fmt"
	"strings"
)

// CoverLetterInput carries the caller-supplied job fields for a cover letter.
type CoverLetterInput struct {
	JobTitle       string
	CompanyName    string
	JobDescription string
}

// CandidateProfile carries the profile fields interpolated into prompts.
type CandidateProfile struct {
	Industry   string
	Experience int
	Skills     []string
	Bio        string
}

// CoverLetterPrompt builds the instruction for a full cover letter. The
// wording is a policy constant; handlers rely on the 200-word ceiling and
// markdown formatting directives being present.
func CoverLetterPrompt(profile CandidateProfile, input CoverLetterInput) string {
	return fmt.Sprintf(`Write a professional cover letter for a %s position at %s.

About the candidate:
- Industry: %s
- Years of Experience: %d
- Skills: %s
- Professional Background: %s

Job Description:
%s

Requirements:
1. Use a professional, enthusiastic tone
2. Highlight relevant skills and experience
3. Show understanding of the company's needs
4. Keep it concise (max 200 words)
5. Use proper business letter formatting in markdown
6. Include specific examples of achievements
7. Relate candidate's background to job requirements

Format the letter in markdown.`,
		input.JobTitle,
		input.CompanyName,
		profile.Industry,
		profile.Experience,
		strings.Join(profile.Skills, ", "),
		profile.Bio,
		input.JobDescription,
	)
}

// ImproveSectionPrompt builds the instruction for rewriting one resume
// section (experience, education, project). The response is a single plain
// paragraph, not markdown.
func ImproveSectionPrompt(profile CandidateProfile, sectionType, current string) string {
	return fmt.Sprintf(`As an expert resume writer, improve the following %s description for a professional in %s.
Make it more impactful, quantifiable, and aligned with industry standards.
Current content: "%s"

Requirements:
1. Use action verbs
2. Include metrics and results where possible
3. Highlight relevant technical skills
4. Keep it concise but detailed
5. Focus on achievements over responsibilities
6. Use industry-specific keywords

Format the response as a single paragraph without any additional text or explanations.`,
		sectionType,
		profile.Industry,
		current,
	)
}

// ImproveSummaryPrompt builds the instruction for rewriting a professional
// summary, capped at 70-75 words.
func ImproveSummaryPrompt(profile CandidateProfile, current string) string {
	return fmt.Sprintf(`As an expert resume writer, enhance the following professional summary for a professional in %s to make it more impactful, quantifiable, and aligned with industry standards.
Current content: "%s"

Requirements:
1. Utilize action verbs to describe achievements
2. Incorporate metrics and results to demonstrate impact
3. Highlight relevant technical skills and certifications
4. Maintain a concise yet detailed tone
5. Emphasize achievements and accomplishments over job responsibilities
6. Incorporate industry-specific keywords and phrases
7. Limit response to 70-75 words

Format the response as a single paragraph without any additional text or explanations.`,
		profile.Industry,
		current,
	)
}
