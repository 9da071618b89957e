package bootstrap

import "errors"

var (
	errDatabaseRequired  = errors.New("DATABASE_URL is required")
	errGeminiKeyRequired = errors.New("GEMINI_API_KEY is required")
)
