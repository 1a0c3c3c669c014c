package chat

import "fulano-assistant/internal/model"

// Route is the path that answered a turn.
type Route string

const (
	RouteLocal    Route = "local"
	RouteDelegate Route = "delegate"
)

// --- UseCase Inputs ---

type ChatInput struct {
	ConversationID string // empty starts a new conversation
	Message        string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	ConversationID string
	Text           string
	HandledByLLM   bool
	Route          Route
	Intent         string
	Confidence     float64
}

type ListMessagesOutput struct {
	ConversationID string
	Messages       []model.Message
}

type ClassifyOutput struct {
	Intent     string
	Confidence float64
	Route      Route
}
