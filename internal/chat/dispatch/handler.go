package dispatch

import (
	"context"
	"math/rand/v2"

	"fulano-assistant/internal/agent"
	pkgLog "fulano-assistant/pkg/log"
)

// Canned answers with one of a fixed set of responses, picked uniformly at random.
type Canned struct {
	responses []string
	pick      func(n int) int
}

func NewCanned(responses []string) (*Canned, error) {
	if len(responses) == 0 {
		return nil, ErrNoResponses
	}
	return &Canned{responses: append([]string(nil), responses...), pick: rand.IntN}, nil
}

func (c *Canned) Handle(ctx context.Context, text string) string {
	return c.responses[c.pick(len(c.responses))]
}

// Responses returns the candidate answers.
func (c *Canned) Responses() []string {
	return append([]string(nil), c.responses...)
}

// Compute answers by running one tool and rendering its payload into a template.
type Compute struct {
	tool     agent.ToolName
	invoker  Invoker
	args     ArgsFunc
	render   RenderFunc
	fallback string
	l        pkgLog.Logger
}

func NewCompute(invoker Invoker, tool agent.ToolName, args ArgsFunc, render RenderFunc, fallback string, l pkgLog.Logger) *Compute {
	if args == nil {
		args = func(string) (map[string]interface{}, bool) { return map[string]interface{}{}, true }
	}
	if fallback == "" {
		fallback = ApologyTool
	}
	return &Compute{tool: tool, invoker: invoker, args: args, render: render, fallback: fallback, l: l}
}

func (c *Compute) Handle(ctx context.Context, text string) string {
	args, ok := c.args(text)
	if !ok {
		return c.fallback
	}

	result, err := c.invoker.Invoke(ctx, c.tool, args)
	if err != nil {
		c.l.Errorf(ctx, "%s: %s: %v", LogPrefixCompute, c.tool, err)
		return ApologyTool
	}
	if result.IsError {
		c.l.Warnf(ctx, "%s: %s: %s", LogPrefixCompute, c.tool, result.Message())
		return ApologyTool
	}

	out, ok := c.render(result.Payload)
	if !ok {
		c.l.Warnf(ctx, "%s: %s: unexpected payload %v", LogPrefixCompute, c.tool, result.Payload)
		return ApologyUnexpectedOut
	}
	return out
}

var (
	_ Handler = (*Canned)(nil)
	_ Handler = (*Compute)(nil)
)
