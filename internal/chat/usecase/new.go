package usecase

import (
	"context"
	"time"

	"fulano-assistant/internal/agent/orchestrator"
	"fulano-assistant/internal/chat/dispatch"
	"fulano-assistant/internal/conversation/locker"
	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/internal/intent"
	"fulano-assistant/pkg/llmprovider"
	"fulano-assistant/pkg/log"
)

// Responder runs the LLM path for one utterance. *orchestrator.Orchestrator satisfies it.
type Responder interface {
	Respond(ctx context.Context, history []llmprovider.Message, text string) (orchestrator.Reply, error)
}

// Config holds the routing parameters.
type Config struct {
	ConfidenceThreshold float64
	LocalIntents        map[intent.Label]bool // labels allowed to answer locally
	DelegateTimeout     time.Duration         // bound for the LLM path, which ignores caller cancellation
	LockTimeout         time.Duration         // wait for a turn already running on the same conversation
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	store      repository.Store
	locker     locker.Locker
	classifier intent.Classifier
	table      *dispatch.Table
	llm        Responder
	cfg        Config
	l          log.Logger
}

// New creates a new chat UseCase implementation.
func New(store repository.Store, lk locker.Locker, classifier intent.Classifier, table *dispatch.Table, llm Responder, cfg Config, l log.Logger) *implUseCase {
	if cfg.DelegateTimeout <= 0 {
		cfg.DelegateTimeout = DefaultDelegateTimeout
	}
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = cfg.DelegateTimeout + lockTimeoutMargin
	}
	return &implUseCase{
		store:      store,
		locker:     lk,
		classifier: classifier,
		table:      table,
		llm:        llm,
		cfg:        cfg,
		l:          l,
	}
}

// MaxTurnDuration bounds one Chat call: the wait for the conversation lock plus the LLM path.
// Shutdown should drain for at least this long, since a delegated turn outlives its caller.
func (uc *implUseCase) MaxTurnDuration() time.Duration {
	return uc.cfg.LockTimeout + uc.cfg.DelegateTimeout
}
