package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fulano-assistant/internal/chat"
	"fulano-assistant/internal/conversation/locker"
	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/internal/intent"
	"fulano-assistant/internal/model"
	"fulano-assistant/pkg/llmprovider"
	"fulano-assistant/pkg/metrics"
)

// Chat runs one turn: CLASSIFY, then LOCAL or DELEGATE, then RESPOND.
// The user message is stored before the reply is computed and the bot message
// before returning. A blank message gets ReplyBlankMessage without classification.
// Only oversized input, a busy conversation and store failures are returned as errors.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	text, err := normalizeMessage(input.Message)
	blank := errors.Is(err, chat.ErrEmptyMessage)
	if err != nil && !blank {
		return chat.ChatOutput{}, err
	}
	started := time.Now()

	conv, err := uc.store.GetOrCreate(ctx, input.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOrCreate: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistence, err)
	}

	lockCtx, cancelLock := context.WithTimeout(ctx, uc.cfg.LockTimeout)
	unlock, err := uc.locker.Lock(lockCtx, conv.ID)
	cancelLock()
	if err != nil {
		uc.l.Errorf(ctx, "%s: Lock %s: %v", LogPrefixChat, conv.ID, err)
		if errors.Is(err, locker.ErrLockTimeout) {
			return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrConversationBusy, err)
		}
		return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistence, err)
	}
	defer unlock()

	// CLASSIFY
	result := intent.Result{Label: labelBlank}
	route := chat.RouteLocal
	if !blank {
		result = uc.classifier.Predict(text)
		route = uc.route(result)
		metrics.ClassifierConfidence.Observe(result.Confidence)
	}
	delegated := route == chat.RouteDelegate

	var history []llmprovider.Message
	if delegated {
		msgs, err := uc.store.ListMessages(ctx, conv.ID)
		if err != nil {
			uc.l.Errorf(ctx, "%s: ListMessages: %v", LogPrefixChat, err)
			return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistence, err)
		}
		history = toLLMHistory(msgs)
	}

	if _, err := uc.store.Append(ctx, repository.AppendOptions{
		ConversationID: conv.ID,
		Sender:         model.SenderUser,
		Content:        text,
		HandledByLLM:   delegated,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: Append user: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistence, err)
	}

	// LOCAL | DELEGATE
	var reply string
	switch {
	case blank:
		reply = chat.ReplyBlankMessage
	case delegated:
		// the LLM path runs to completion even if the caller goes away
		ctx = context.WithoutCancel(ctx)
		reply = uc.delegate(ctx, history, text)
	default:
		reply = uc.answerLocally(ctx, result.Label, text)
	}

	// RESPOND
	if _, err := uc.store.Append(ctx, repository.AppendOptions{
		ConversationID: conv.ID,
		Sender:         model.SenderBot,
		Content:        reply,
		HandledByLLM:   delegated,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: Append bot: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistence, err)
	}

	metrics.ChatTurns.WithLabelValues(string(route), string(result.Label)).Inc()
	metrics.ChatTurnDuration.WithLabelValues(string(route)).Observe(time.Since(started).Seconds())
	uc.l.Infof(ctx, "%s: conversation=%s route=%s intent=%s confidence=%.3f",
		LogPrefixChat, conv.ID, route, result.Label, result.Confidence)

	return chat.ChatOutput{
		ConversationID: conv.ID,
		Text:           reply,
		HandledByLLM:   delegated,
		Route:          route,
		Intent:         string(result.Label),
		Confidence:     result.Confidence,
	}, nil
}

// route answers locally only for a confident prediction of an enabled label.
func (uc *implUseCase) route(result intent.Result) chat.Route {
	if result.Confidence < uc.cfg.ConfidenceThreshold || !uc.cfg.LocalIntents[result.Label] {
		return chat.RouteDelegate
	}
	if _, ok := uc.table.Lookup(result.Label); !ok {
		return chat.RouteDelegate
	}
	return chat.RouteLocal
}

// normalizeMessage trims text and enforces the length bounds.
func normalizeMessage(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > chat.MaxMessageLength {
		return "", chat.ErrMessageTooLong
	}
	return text, nil
}
