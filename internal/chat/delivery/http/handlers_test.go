package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fulano-assistant/config"
	"fulano-assistant/internal/chat"
	"fulano-assistant/internal/middleware"
	"fulano-assistant/internal/model"
	"fulano-assistant/pkg/log"
	"fulano-assistant/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	lastInput chat.ChatInput
	chatOut   chat.ChatOutput
	chatErr   error
	listOut   chat.ListMessagesOutput
	listErr   error
}

func (f *fakeUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	f.lastInput = input
	return f.chatOut, f.chatErr
}

func (f *fakeUseCase) ListMessages(ctx context.Context, id string) (chat.ListMessagesOutput, error) {
	return f.listOut, f.listErr
}

func (f *fakeUseCase) Classify(ctx context.Context, message string) (chat.ClassifyOutput, error) {
	return chat.ClassifyOutput{}, nil
}

func newRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{})
	RegisterRoutes(r.Group(""), New(log.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_OK(t *testing.T) {
	uc := &fakeUseCase{chatOut: chat.ChatOutput{
		ConversationID: "c-1",
		Text:           "¡Épale! ¿Qué más pues?",
		Route:          chat.RouteLocal,
	}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/chat", `{"message":"hola","conversation_id":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "¡Épale! ¿Qué más pues?", resp.GeneratedText)
	assert.Equal(t, "c-1", resp.ConversationID)
	assert.False(t, resp.HandledByLLM)
	assert.Equal(t, chat.ChatInput{Message: "hola"}, uc.lastInput)
}

func TestChat_BlankMessageReachesUseCase(t *testing.T) {
	uc := &fakeUseCase{chatOut: chat.ChatOutput{ConversationID: "c-1", Text: chat.ReplyBlankMessage}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/chat", `{"message":"   "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "   ", uc.lastInput.Message)

	var resp chatResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chat.ReplyBlankMessage, resp.GeneratedText)
}

func TestChat_PassesConversationID(t *testing.T) {
	uc := &fakeUseCase{chatOut: chat.ChatOutput{ConversationID: "c-9", Text: "ok", HandledByLLM: true}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/chat", `{"message":"qué es la fotosíntesis","conversation_id":" c-9 "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c-9", uc.lastInput.ConversationID)

	var resp chatResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HandledByLLM)
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"malformed body", `{"message":`, nil, http.StatusBadRequest, "invalid request body"},
		{"too long", `{"message":"x"}`, chat.ErrMessageTooLong, http.StatusBadRequest, "message is too long"},
		{"busy", `{"message":"hola"}`, fmt.Errorf("%w: lock timeout", chat.ErrConversationBusy), http.StatusConflict, "conversation is busy, retry shortly"},
		{"persistence", `{"message":"hola"}`, fmt.Errorf("%w: dial tcp: connection refused", chat.ErrPersistence), http.StatusInternalServerError, "internal server error"},
		{"unexpected", `{"message":"hola"}`, errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&fakeUseCase{chatErr: tt.err})

			w := do(r, http.MethodPost, "/chat", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestListMessages(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{listOut: chat.ListMessagesOutput{
		ConversationID: "c-1",
		Messages: []model.Message{
			{ID: "m-1", ConversationID: "c-1", Sender: model.SenderUser, Content: "hola", CreatedAt: created},
			{ID: "m-2", ConversationID: "c-1", Sender: model.SenderBot, Content: "¡Épale!", CreatedAt: created},
		},
	}}
	r := newRouter(uc)

	w := do(r, http.MethodGet, "/chat/c-1/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ErrorCode int              `json:"error_code"`
		Data      listMessagesResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ErrorCode)
	require.Len(t, resp.Data.Messages, 2)
	assert.Equal(t, "user", resp.Data.Messages[0].Sender)
	assert.Equal(t, "bot", resp.Data.Messages[1].Sender)
	assert.True(t, created.Equal(resp.Data.Messages[0].CreatedAt.Time()))
	assert.Contains(t, w.Body.String(), `"created_at":"2026-03-01T10:00:00.000Z"`)
}

func TestListMessages_StoreDown(t *testing.T) {
	r := newRouter(&fakeUseCase{listErr: fmt.Errorf("%w: timeout", chat.ErrPersistence)})

	w := do(r, http.MethodGet, "/chat/c-1/messages", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
