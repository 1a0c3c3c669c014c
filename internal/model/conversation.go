package model

import "time"

// Sender says who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Valid reports whether s is a known sender.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// Conversation is a durable, ordered sequence of messages.
type Conversation struct {
	ID        string
	CreatedAt time.Time
}

// Message is one append-only entry of a conversation.
type Message struct {
	ID             string
	ConversationID string
	Sender         Sender
	Content        string
	HandledByLLM   bool
	CreatedAt      time.Time
}
