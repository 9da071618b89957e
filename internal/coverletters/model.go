package coverletters

import "time"

// StatusCompleted is the only status the generation flow produces. The column
// exists so a future async flow can park letters in intermediate states.
const StatusCompleted = "completed"

// CoverLetter is a generated letter owned by exactly one user. Content is
// stored verbatim as returned by the generator; the job fields are echoed
// from the request and immutable after creation.
type CoverLetter struct {
	ID             string
	UserID         string
	Content        string
	JobDescription string
	CompanyName    string
	JobTitle       string
	Status         string
	CreatedAt      time.Time
}
