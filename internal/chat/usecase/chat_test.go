package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fulano-assistant/config"
	sqliteconn "fulano-assistant/config/sqlite"
	"fulano-assistant/internal/agent"
	"fulano-assistant/internal/agent/orchestrator"
	"fulano-assistant/internal/chat"
	"fulano-assistant/internal/chat/dispatch"
	"fulano-assistant/internal/conversation/locker"
	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/internal/conversation/repository/sqlite"
	"fulano-assistant/internal/intent"
	"fulano-assistant/internal/model"
	"fulano-assistant/pkg/llmprovider"
	"fulano-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResponder records what the LLM path received.
type stubResponder struct {
	mu       sync.Mutex
	reply    string
	err      error
	panicMsg string
	calls    int
	history  [][]llmprovider.Message
	deadline bool
	ctxErr   error
}

func (s *stubResponder) Respond(ctx context.Context, history []llmprovider.Message, text string) (orchestrator.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.history = append(s.history, history)
	_, s.deadline = ctx.Deadline()
	s.ctxErr = ctx.Err()
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.err != nil {
		return orchestrator.Reply{}, s.err
	}
	return orchestrator.Reply{Text: s.reply}, nil
}

type noopInvoker struct{}

func (noopInvoker) Invoke(ctx context.Context, name agent.ToolName, args map[string]interface{}) (agent.ToolResult, error) {
	return agent.ToolResult{Name: name, IsError: true, Payload: map[string]interface{}{"message": "offline"}}, nil
}

// failingStore fails the selected operations.
type failingStore struct {
	repository.Store
	failGet, failAppendUser, failAppendBot, failList bool
}

var errDown = errors.New("database is down")

func (f *failingStore) GetOrCreate(ctx context.Context, id string) (model.Conversation, error) {
	if f.failGet {
		return model.Conversation{}, errDown
	}
	return f.Store.GetOrCreate(ctx, id)
}

func (f *failingStore) Append(ctx context.Context, opt repository.AppendOptions) (model.Message, error) {
	if (opt.Sender == model.SenderUser && f.failAppendUser) || (opt.Sender == model.SenderBot && f.failAppendBot) {
		return model.Message{}, errDown
	}
	return f.Store.Append(ctx, opt)
}

func (f *failingStore) ListMessages(ctx context.Context, id string) ([]model.Message, error) {
	if f.failList {
		return nil, errDown
	}
	return f.Store.ListMessages(ctx, id)
}

var (
	sharedModel     *intent.Model
	sharedModelOnce sync.Once
)

func classifier(t *testing.T) *intent.Model {
	t.Helper()
	sharedModelOnce.Do(func() {
		m, err := intent.Train(intent.DefaultCorpus())
		if err != nil {
			panic(err)
		}
		sharedModel = m
	})
	return sharedModel
}

func newStore(t *testing.T) repository.Store {
	t.Helper()
	db, err := sqliteconn.Connect(context.Background(), config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := sqlite.New(db, log.NewNop())
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func newUseCase(t *testing.T, store repository.Store, llm Responder, local []string) *implUseCase {
	t.Helper()
	table, err := dispatch.NewDefault(intent.DefaultCorpus(), noopInvoker{}, dispatch.Options{}, log.NewNop())
	require.NoError(t, err)
	selected, err := table.Select(local)
	require.NoError(t, err)

	return New(store, locker.NewLocal(), classifier(t), table, llm, Config{
		ConfidenceThreshold: 0.70,
		LocalIntents:        selected,
		DelegateTimeout:     5 * time.Second,
	}, log.NewNop())
}

func saludoResponses(t *testing.T) []string {
	t.Helper()
	for _, in := range intent.DefaultCorpus() {
		if in.Name == intent.LabelSaludo {
			return in.Responses
		}
	}
	t.Fatal("saludo intent missing")
	return nil
}

func TestChat_LocalGreeting(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "unused"}
	uc := newUseCase(t, store, llm, nil)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "hola"})
	require.NoError(t, err)

	assert.Equal(t, chat.RouteLocal, out.Route)
	assert.Equal(t, string(intent.LabelSaludo), out.Intent)
	assert.GreaterOrEqual(t, out.Confidence, 0.70)
	assert.False(t, out.HandledByLLM)
	assert.Contains(t, saludoResponses(t), out.Text)
	assert.Zero(t, llm.calls)

	msgs, err := store.ListMessages(context.Background(), out.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderUser, msgs[0].Sender)
	assert.Equal(t, "hola", msgs[0].Content)
	assert.Equal(t, model.SenderBot, msgs[1].Sender)
	assert.Equal(t, out.Text, msgs[1].Content)
	assert.False(t, msgs[1].HandledByLLM)
}

func TestChat_DelegatesLowConfidence(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "La fotosíntesis es..."}
	uc := newUseCase(t, store, llm, nil)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "cuéntame algo sobre la fotosíntesis"})
	require.NoError(t, err)

	assert.Equal(t, chat.RouteDelegate, out.Route)
	assert.Less(t, out.Confidence, 0.70)
	assert.True(t, out.HandledByLLM)
	assert.Equal(t, "La fotosíntesis es...", out.Text)
	assert.True(t, llm.deadline, "the LLM path must be bounded")

	msgs, err := store.ListMessages(context.Background(), out.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[1].HandledByLLM)
}

func TestChat_HistoryComesFromStore(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "Claro que sí."}
	uc := newUseCase(t, store, llm, nil)
	ctx := context.Background()

	first, err := uc.Chat(ctx, chat.ChatInput{Message: "hola"})
	require.NoError(t, err)

	_, err = uc.Chat(ctx, chat.ChatInput{ConversationID: first.ConversationID, Message: "explícame la teoría de la relatividad"})
	require.NoError(t, err)

	require.Len(t, llm.history, 1)
	history := llm.history[0]
	require.Len(t, history, 2, "history holds the turns before the current one")
	assert.Equal(t, llmprovider.RoleUser, history[0].Role)
	assert.Equal(t, "hola", history[0].Text())
	assert.Equal(t, llmprovider.RoleModel, history[1].Role)
	assert.Equal(t, first.Text, history[1].Text())
}

func TestChat_MessagesGrowByTwo(t *testing.T) {
	store := newStore(t)
	uc := newUseCase(t, store, &stubResponder{reply: "ok"}, nil)
	ctx := context.Background()

	out, err := uc.Chat(ctx, chat.ChatInput{Message: "hola"})
	require.NoError(t, err)
	id := out.ConversationID

	utterances := []string{"gracias", "qué es un agujero negro", "chao"}
	for i, u := range utterances {
		_, err := uc.Chat(ctx, chat.ChatInput{ConversationID: id, Message: u})
		require.NoError(t, err)

		msgs, err := store.ListMessages(ctx, id)
		require.NoError(t, err)
		assert.Len(t, msgs, 2*(i+2))
		assert.Equal(t, u, msgs[len(msgs)-2].Content)
	}
}

func TestChat_LLMFailuresBecomeApologies(t *testing.T) {
	tests := []struct {
		name string
		llm  *stubResponder
		want string
	}{
		{"unknown tool", &stubResponder{err: fmt.Errorf("%w: \"launch\"", agent.ErrUnknownTool)}, chat.ApologyLLM},
		{"providers down", &stubResponder{err: llmprovider.ErrAllProvidersFailed}, chat.ApologyLLM},
		{"tool limit", &stubResponder{err: orchestrator.ErrToolCallLimit}, chat.ApologyLLM},
		{"empty reply", &stubResponder{err: orchestrator.ErrEmptyReply}, chat.FallbackNoText},
		{"panic", &stubResponder{panicMsg: "nil map"}, chat.ApologyLLM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			uc := newUseCase(t, store, tt.llm, nil)

			out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "cuéntame algo sobre la fotosíntesis"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Text)
			assert.True(t, out.HandledByLLM)

			msgs, err := store.ListMessages(context.Background(), out.ConversationID)
			require.NoError(t, err)
			require.Len(t, msgs, 2)
			assert.Equal(t, tt.want, msgs[1].Content)
		})
	}
}

func TestChat_DelegateIgnoresCallerCancellation(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "listo"}
	uc := newUseCase(t, store, llm, nil)

	ctx, cancel := context.WithCancel(context.Background())
	uc.llm = responderFunc(func(c context.Context, h []llmprovider.Message, text string) (orchestrator.Reply, error) {
		cancel()
		return llm.Respond(c, h, text)
	})

	out, err := uc.Chat(ctx, chat.ChatInput{Message: "cuéntame algo sobre la fotosíntesis"})
	require.NoError(t, err)
	assert.Equal(t, "listo", out.Text)
	assert.NoError(t, llm.ctxErr)

	msgs, err := store.ListMessages(context.Background(), out.ConversationID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

type responderFunc func(ctx context.Context, history []llmprovider.Message, text string) (orchestrator.Reply, error)

func (f responderFunc) Respond(ctx context.Context, history []llmprovider.Message, text string) (orchestrator.Reply, error) {
	return f(ctx, history, text)
}

func TestChat_LocalIntentSelection(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "¡Hola desde el LLM!"}
	uc := newUseCase(t, store, llm, []string{"despedida"})

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, chat.RouteDelegate, out.Route, "saludo is not enabled locally")
	assert.Equal(t, "¡Hola desde el LLM!", out.Text)
}

func TestChat_LocalToolErrorBecomesApology(t *testing.T) {
	store := newStore(t)
	uc := newUseCase(t, store, &stubResponder{}, nil)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "a cómo está el dólar"})
	require.NoError(t, err)
	assert.Equal(t, chat.RouteLocal, out.Route)
	assert.Equal(t, dispatch.ApologyTool, out.Text)
}

func TestChat_ToolRoundTripThroughOrchestrator(t *testing.T) {
	store := newStore(t)
	registry := agent.NewToolRegistry(log.NewNop(), time.Second)
	echo := &echoTool{}
	require.NoError(t, registry.Register(echo))

	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		{Content: llmprovider.Message{Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: "echo_tool", Args: map[string]interface{}{"x": 1}}}}}},
		{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: "done"}}}},
	}}
	orch := orchestrator.New(llmprovider.NewGateway(gen, llmprovider.SessionOptions{}), registry, log.NewNop(), orchestrator.Config{})
	uc := newUseCase(t, store, orch, nil)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "cuéntame algo sobre la fotosíntesis"})
	require.NoError(t, err)
	assert.Equal(t, "done", out.Text)
	require.Len(t, echo.calls, 1)
	assert.Equal(t, map[string]interface{}{"x": 1}, echo.calls[0])
}

func TestChat_UnknownToolThroughOrchestrator(t *testing.T) {
	store := newStore(t)
	registry := agent.NewToolRegistry(log.NewNop(), time.Second)
	gen := &scriptedGenerator{responses: []*llmprovider.Response{
		{Content: llmprovider.Message{Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: "launch_rockets"}}}}},
	}}
	orch := orchestrator.New(llmprovider.NewGateway(gen, llmprovider.SessionOptions{}), registry, log.NewNop(), orchestrator.Config{})
	uc := newUseCase(t, store, orch, nil)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "cuéntame algo sobre la fotosíntesis"})
	require.NoError(t, err)
	assert.Equal(t, chat.ApologyLLM, out.Text)
}

func TestChat_BlankMessageGetsFixedReply(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "no debería llamarse"}
	uc := newUseCase(t, store, llm, nil)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: " \n\t "})
	require.NoError(t, err)
	assert.Equal(t, chat.ReplyBlankMessage, out.Text)
	assert.False(t, out.HandledByLLM)
	assert.NotEmpty(t, out.ConversationID)
	assert.Zero(t, llm.calls)

	msgs, err := store.ListMessages(context.Background(), out.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderUser, msgs[0].Sender)
	assert.Empty(t, msgs[0].Content)
	assert.Equal(t, chat.ReplyBlankMessage, msgs[1].Content)

	// the blank turn and its reply are left out of the history handed to the LLM
	_, err = uc.Chat(context.Background(), chat.ChatInput{ConversationID: out.ConversationID, Message: "cuéntame algo sobre la fotosíntesis"})
	require.NoError(t, err)
	require.Equal(t, 1, llm.calls)
	require.Len(t, llm.history, 1)
	assert.Empty(t, llm.history[0])
}

func TestChat_InputValidation(t *testing.T) {
	uc := newUseCase(t, newStore(t), &stubResponder{}, nil)

	long := make([]rune, chat.MaxMessageLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := uc.Chat(context.Background(), chat.ChatInput{Message: string(long)})
	assert.ErrorIs(t, err, chat.ErrMessageTooLong)
}

func TestChat_PersistenceFailures(t *testing.T) {
	tests := []struct {
		name      string
		store     func(repository.Store) *failingStore
		wantLLM   int
		wantSaved int
	}{
		{"get or create", func(s repository.Store) *failingStore { return &failingStore{Store: s, failGet: true} }, 0, 0},
		{"history", func(s repository.Store) *failingStore { return &failingStore{Store: s, failList: true} }, 0, 0},
		{"user message", func(s repository.Store) *failingStore { return &failingStore{Store: s, failAppendUser: true} }, 0, 0},
		{"bot message", func(s repository.Store) *failingStore { return &failingStore{Store: s, failAppendBot: true} }, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newStore(t)
			conv, err := base.GetOrCreate(context.Background(), "")
			require.NoError(t, err)

			llm := &stubResponder{reply: "ok"}
			uc := newUseCase(t, tt.store(base), llm, nil)

			_, err = uc.Chat(context.Background(), chat.ChatInput{ConversationID: conv.ID, Message: "cuéntame algo sobre la fotosíntesis"})
			assert.ErrorIs(t, err, chat.ErrPersistence)
			assert.Equal(t, tt.wantLLM, llm.calls)

			msgs, err := base.ListMessages(context.Background(), conv.ID)
			require.NoError(t, err)
			assert.Len(t, msgs, tt.wantSaved)
		})
	}
}

func TestChat_ConversationBusy(t *testing.T) {
	store := newStore(t)
	llm := &stubResponder{reply: "ok"}
	uc := newUseCase(t, store, llm, nil)
	uc.cfg.LockTimeout = 20 * time.Millisecond
	ctx := context.Background()

	conv, err := store.GetOrCreate(ctx, "")
	require.NoError(t, err)
	unlock, err := uc.locker.Lock(ctx, conv.ID)
	require.NoError(t, err)
	defer unlock()

	_, err = uc.Chat(ctx, chat.ChatInput{ConversationID: conv.ID, Message: "hola"})
	assert.ErrorIs(t, err, chat.ErrConversationBusy)
	assert.Zero(t, llm.calls)

	msgs, err := store.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestChat_SameConversationIsSerialized(t *testing.T) {
	store := newStore(t)
	uc := newUseCase(t, store, &stubResponder{reply: "ok"}, nil)
	ctx := context.Background()

	first, err := uc.Chat(ctx, chat.ChatInput{Message: "hola"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := "hola"
			if i%2 == 0 {
				msg = fmt.Sprintf("pregunta sobre astronomía número %d", i)
			}
			_, err := uc.Chat(ctx, chat.ChatInput{ConversationID: first.ConversationID, Message: msg})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	msgs, err := store.ListMessages(ctx, first.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 18)
	for i, m := range msgs {
		want := model.SenderUser
		if i%2 == 1 {
			want = model.SenderBot
		}
		assert.Equal(t, want, m.Sender, "message %d out of order", i)
	}
}

func TestListMessages(t *testing.T) {
	store := newStore(t)
	uc := newUseCase(t, store, &stubResponder{}, nil)
	ctx := context.Background()

	_, err := uc.ListMessages(ctx, " ")
	assert.ErrorIs(t, err, chat.ErrMissingID)

	out, err := uc.Chat(ctx, chat.ChatInput{Message: "hola"})
	require.NoError(t, err)

	list, err := uc.ListMessages(ctx, out.ConversationID)
	require.NoError(t, err)
	assert.Len(t, list.Messages, 2)

	failing := newUseCase(t, &failingStore{Store: store, failList: true}, &stubResponder{}, nil)
	_, err = failing.ListMessages(ctx, out.ConversationID)
	assert.ErrorIs(t, err, chat.ErrPersistence)
}

func TestClassify(t *testing.T) {
	llm := &stubResponder{}
	uc := newUseCase(t, newStore(t), llm, nil)
	ctx := context.Background()

	out, err := uc.Classify(ctx, "hola")
	require.NoError(t, err)
	assert.Equal(t, string(intent.LabelSaludo), out.Intent)
	assert.Equal(t, chat.RouteLocal, out.Route)

	out, err = uc.Classify(ctx, "cuéntame algo sobre la fotosíntesis")
	require.NoError(t, err)
	assert.Equal(t, chat.RouteDelegate, out.Route)

	assert.Zero(t, llm.calls)

	_, err = uc.Classify(ctx, "")
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestMaxTurnDuration(t *testing.T) {
	uc := newUseCase(t, newStore(t), &stubResponder{}, nil)
	assert.Equal(t, 5*time.Second+5*time.Second+lockTimeoutMargin, uc.MaxTurnDuration())
}
