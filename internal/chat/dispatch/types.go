package dispatch

import (
	"context"

	"fulano-assistant/internal/agent"
)

// Handler answers an utterance locally. It never fails: tool errors become apology text.
type Handler interface {
	Handle(ctx context.Context, text string) string
}

// Invoker runs a registered tool. *agent.ToolRegistry satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, name agent.ToolName, args map[string]interface{}) (agent.ToolResult, error)
}

// ArgsFunc builds tool arguments from an utterance. ok=false answers with the handler's fallback text.
type ArgsFunc func(text string) (args map[string]interface{}, ok bool)

// RenderFunc renders a successful tool payload. ok=false answers with an apology.
type RenderFunc func(payload map[string]interface{}) (text string, ok bool)
