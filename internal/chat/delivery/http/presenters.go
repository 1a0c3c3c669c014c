package http

import (
	"fulano-assistant/internal/chat"
	"fulano-assistant/internal/model"
	"fulano-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
}

func (r chatReq) toInput() chat.ChatInput {
	input := chat.ChatInput{Message: r.Message}
	if r.ConversationID != nil {
		input.ConversationID = *r.ConversationID
	}
	return input
}

// --- Response DTOs ---

// chatResp is written bare, without the response envelope, so clients read generated_text directly.
type chatResp struct {
	GeneratedText  string `json:"generated_text"`
	ConversationID string `json:"conversation_id"`
	HandledByLLM   bool   `json:"handled_by_llm"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		GeneratedText:  out.Text,
		ConversationID: out.ConversationID,
		HandledByLLM:   out.HandledByLLM,
	}
}

type messageResp struct {
	ID           string             `json:"id"`
	Sender       string             `json:"sender"`
	Content      string             `json:"content"`
	HandledByLLM bool               `json:"handled_by_llm"`
	CreatedAt    response.Timestamp `json:"created_at"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:           m.ID,
		Sender:       string(m.Sender),
		Content:      m.Content,
		HandledByLLM: m.HandledByLLM,
		CreatedAt:    response.Timestamp(m.CreatedAt),
	}
}

type listMessagesResp struct {
	ConversationID string        `json:"conversation_id"`
	Messages       []messageResp `json:"messages"`
}

func (h *handler) newListMessagesResp(out chat.ListMessagesOutput) listMessagesResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = newMessageResp(m)
	}
	return listMessagesResp{
		ConversationID: out.ConversationID,
		Messages:       msgs,
	}
}
