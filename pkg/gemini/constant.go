package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

// headerAPIKey carries the key so it never shows up in a request URL or a transport error.
const headerAPIKey = "x-goog-api-key"

const maxErrorBodySize = 4 << 10

// Roles accepted by the generateContent endpoint.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Finish reasons reported on a candidate.
const (
	FinishStop      = "STOP"
	FinishMaxTokens = "MAX_TOKENS"
	FinishSafety    = "SAFETY"
)
