package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"fulano-assistant/internal/agent"
	"fulano-assistant/pkg/llmprovider"
)

type echoTool struct {
	mu    sync.Mutex
	calls []map[string]interface{}
}

func (e *echoTool) Name() agent.ToolName   { return "echo_tool" }
func (e *echoTool) Description() string    { return "Echoes its arguments" }
func (e *echoTool) Timeout() time.Duration { return time.Second }
func (e *echoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{"x": map[string]interface{}{"type": "integer"}},
	}
}
func (e *echoTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, params)
	return map[string]interface{}{"echo": params["x"]}, nil
}

type scriptedGenerator struct {
	mu        sync.Mutex
	responses []*llmprovider.Response
	next      int
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next >= len(g.responses) {
		return nil, errors.New("script exhausted")
	}
	resp := g.responses[g.next]
	g.next++
	return resp, nil
}
