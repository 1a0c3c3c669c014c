package agent

import (
	"context"
	"time"

	"fulano-assistant/pkg/llmprovider"

	"github.com/xeipuuv/gojsonschema"
)

// ToolName identifies a registered tool. Lookup is exact-match.
type ToolName string

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() ToolName

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Timeout bounds one execution. Zero uses the registry default.
	Timeout() time.Duration

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolResult is what a tool invocation produced. Failures are carried in the
// payload as {"message": ...} with IsError set, never as a Go error.
type ToolResult struct {
	Name    ToolName
	Payload map[string]interface{}
	IsError bool
}

// Message returns the error message of a failed result.
func (r ToolResult) Message() string {
	if msg, ok := r.Payload[PayloadKeyMessage].(string); ok {
		return msg
	}
	return ""
}

// registeredTool pairs a tool with its compiled argument schema.
type registeredTool struct {
	tool   Tool
	schema *gojsonschema.Schema
	def    llmprovider.Tool
}
