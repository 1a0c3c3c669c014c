package openaicompat

import "time"

const (
	// DefaultModel is used when Config.Model is empty
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the OpenAI API endpoint; any compatible server can be set instead
	DefaultBaseURL = "https://api.openai.com/v1/"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
