package httpserver

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fulano-assistant/config"
	"fulano-assistant/internal/chat"
	"fulano-assistant/internal/middleware"
	"fulano-assistant/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct{}

func (stubUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	return chat.ChatOutput{ConversationID: "c-1", Text: "¡Épale!"}, nil
}

func (stubUseCase) ListMessages(ctx context.Context, id string) (chat.ListMessagesOutput, error) {
	return chat.ListMessagesOutput{ConversationID: id}, nil
}

func (stubUseCase) Classify(ctx context.Context, message string) (chat.ClassifyOutput, error) {
	return chat.ClassifyOutput{Intent: "saludo", Confidence: 0.93, Route: chat.RouteLocal}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func newServer(t *testing.T, db Pinger) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Middleware:  middleware.New(log.NewNop(), config.RateLimitConfig{}),
		ChatUseCase: stubUseCase{},
		Database:    db,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, stubPinger{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}

	w := get(srv, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestReady_DatabaseDown(t *testing.T) {
	srv := newServer(t, stubPinger{err: errors.New("connection refused")})

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestChatRouteIsMounted(t *testing.T) {
	srv := newServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"generated_text":"¡Épale!","conversation_id":"c-1","handled_by_llm":false}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

func TestTestRoutes_OnlyOutsideProduction(t *testing.T) {
	classify := func(env string) int {
		srv, err := New(log.NewNop(), Config{
			Port:        8080,
			Mode:        "test",
			Environment: env,
			Middleware:  middleware.New(log.NewNop(), config.RateLimitConfig{}),
			ChatUseCase: stubUseCase{},
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test/classify", strings.NewReader(`{"text":"hola"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, classify("development"))
	assert.Equal(t, http.StatusNotFound, classify("production"))
}

func TestServe_DrainsInFlightRequests(t *testing.T) {
	srv, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            "test",
		Environment:     "development",
		Middleware:      middleware.New(log.NewNop(), config.RateLimitConfig{}),
		ChatUseCase:     stubUseCase{},
		ShutdownTimeout: 2 * time.Second,
	})
	require.NoError(t, err)

	started := make(chan struct{})
	srv.Handler().GET("/slow", func(c *gin.Context) {
		close(started)
		time.Sleep(300 * time.Millisecond)
		c.String(http.StatusOK, "done")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.serve(ctx, ln) }()

	type result struct {
		body string
		err  error
	}
	got := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/slow")
		if err != nil {
			got <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		got <- result{body: string(b), err: err}
	}()

	<-started
	cancel()

	res := <-got
	require.NoError(t, res.err)
	assert.Equal(t, "done", res.body)
	assert.NoError(t, <-served)
}

func TestNew_DefaultShutdownTimeout(t *testing.T) {
	assert.Equal(t, defaultShutdownTimeout, newServer(t, nil).shutdownTimeout)
}
