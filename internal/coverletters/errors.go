package coverletters

import "errors"

var (
	// ErrNotFound indicates the letter is absent or owned by someone else;
	// the two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed indicates the text-generation provider failed.
	// The underlying cause is logged server-side only.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrPersistenceFailed indicates a storage operation failed.
	ErrPersistenceFailed = errors.New("persistence failed")
)
