package usecase

import (
	"context"
	"errors"
	"fmt"

	"fulano-assistant/internal/agent/orchestrator"
	"fulano-assistant/internal/chat"
	"fulano-assistant/internal/intent"
	"fulano-assistant/internal/model"
	"fulano-assistant/pkg/llmprovider"
)

// delegate runs the LLM round trip. Every failure becomes an apology.
func (uc *implUseCase) delegate(ctx context.Context, history []llmprovider.Message, text string) (reply string) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.DelegateTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: panic: %v", LogPrefixDelegate, r)
			reply = chat.ApologyLLM
		}
	}()

	out, err := uc.llm.Respond(ctx, history, text)
	if err != nil {
		if errors.Is(err, orchestrator.ErrEmptyReply) {
			uc.l.Warnf(ctx, "%s: %v", LogPrefixDelegate, err)
			return chat.FallbackNoText
		}
		uc.l.Errorf(ctx, "%s: %v", LogPrefixDelegate, err)
		return chat.ApologyLLM
	}
	return out.Text
}

// answerLocally runs the handler bound to label. Handlers never fail; a panic becomes an apology.
func (uc *implUseCase) answerLocally(ctx context.Context, label intent.Label, text string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: local handler %s panic: %v", LogPrefixChat, label, r)
			reply = chat.ApologyLLM
		}
	}()

	h, ok := uc.table.Lookup(label)
	if !ok {
		panic(fmt.Sprintf("no handler for routed label %s", label))
	}
	return h.Handle(ctx, text)
}

// toLLMHistory rebuilds the session history from stored messages.
// Blank user turns are dropped together with the reply they got.
func toLLMHistory(msgs []model.Message) []llmprovider.Message {
	history := make([]llmprovider.Message, 0, len(msgs))
	skipReply := false
	for _, m := range msgs {
		if m.Sender == model.SenderUser {
			skipReply = m.Content == ""
		} else if skipReply {
			skipReply = false
			continue
		}
		if m.Content == "" {
			continue
		}
		role := llmprovider.RoleUser
		if m.Sender == model.SenderBot {
			role = llmprovider.RoleModel
		}
		history = append(history, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}
	return history
}
