package users

import "time"

// User is a career profile owned by one authenticated person. ExternalID is
// the stable identity-provider subject; ID is the internal key every artifact
// references.
type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"externalId"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Industry   string    `json:"industry"`
	Experience int       `json:"experience"`
	Skills     []string  `json:"skills"`
	Bio        string    `json:"bio"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile carries the onboarding fields a user can set.
type Profile struct {
	Industry   string
	Experience int
	Skills     []string
	Bio        string
}
