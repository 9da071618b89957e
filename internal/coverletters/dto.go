package coverletters

import "time"

// CoverLetterResponse is the outward-facing representation of a cover letter.
type CoverLetterResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	JobDescription string    `json:"jobDescription"`
	CompanyName    string    `json:"companyName"`
	JobTitle       string    `json:"jobTitle"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toResponse(letter CoverLetter) CoverLetterResponse {
	return CoverLetterResponse{
		ID:             letter.ID,
		Content:        letter.Content,
		JobDescription: letter.JobDescription,
		CompanyName:    letter.CompanyName,
		JobTitle:       letter.JobTitle,
		Status:         letter.Status,
		CreatedAt:      letter.CreatedAt,
	}
}
