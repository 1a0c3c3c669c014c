package orchestrator

import (
	"context"

	"fulano-assistant/internal/agent"
	"fulano-assistant/pkg/llmprovider"
)

// Gateway starts LLM sessions. *llmprovider.Gateway satisfies it.
type Gateway interface {
	StartSession(systemInstruction string, tools []llmprovider.Tool, history []llmprovider.Message) *llmprovider.Session
}

// Registry is the subset of *agent.ToolRegistry used by the round trip.
type Registry interface {
	ToFunctionDefinitions() []llmprovider.Tool
	Invoke(ctx context.Context, name agent.ToolName, args map[string]interface{}) (agent.ToolResult, error)
}

// Reply is the outcome of one delegated user turn.
type Reply struct {
	Text      string
	ToolCalls int
}
