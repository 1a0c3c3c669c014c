package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"fulano-assistant/internal/agent"
	"fulano-assistant/pkg/llmprovider"
)

// Respond sends text to a fresh LLM session seeded with history and runs the
// tool round trip until the LLM produces final text.
//
// Tool failures are fed back to the LLM as error payloads. An unknown tool,
// a session failure, exceeding the tool call limit or an empty final text
// end the turn with an error; callers render an apology.
func (o *Orchestrator) Respond(ctx context.Context, history []llmprovider.Message, text string) (Reply, error) {
	system := o.system + buildTimeContext(o.timezone, o.now())
	session := o.gateway.StartSession(system, o.registry.ToFunctionDefinitions(), history)

	turn, err := session.Send(ctx, text)
	if err != nil {
		return Reply{}, fmt.Errorf("send: %w", err)
	}

	calls := 0
	for turn.IsToolRequest() {
		call := turn.ToolCall
		if calls >= o.maxToolCalls {
			o.l.Warnf(ctx, LogMsgToolLimitReached, LogPrefixRespond, call.Name, calls)
			return Reply{ToolCalls: calls}, fmt.Errorf("%w: %d", ErrToolCallLimit, o.maxToolCalls)
		}
		calls++
		o.l.Infof(ctx, LogMsgRoundTrip, LogPrefixRespond, calls, o.maxToolCalls, call.Name)

		result, err := o.registry.Invoke(ctx, agent.ToolName(call.Name), call.Args)
		if err != nil {
			return Reply{ToolCalls: calls}, err
		}
		if result.IsError {
			o.l.Warnf(ctx, LogMsgToolFailed, LogPrefixRespond, call.Name, result.Message())
		}

		turn, err = session.SendToolResult(ctx, call.Name, result.Payload)
		if err != nil {
			return Reply{ToolCalls: calls}, fmt.Errorf("send tool result: %w", err)
		}
	}

	if strings.TrimSpace(turn.Text) == "" {
		return Reply{ToolCalls: calls}, ErrEmptyReply
	}
	return Reply{Text: turn.Text, ToolCalls: calls}, nil
}
