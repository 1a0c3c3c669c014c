package llmprovider

import (
	"context"
	"fmt"
)

// Generator produces one model response. Provider and Manager both satisfy it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// TurnKind tags the variant held by a Turn.
type TurnKind int

const (
	TurnFinalText TurnKind = iota
	TurnToolRequest
)

// Turn is what the model answered: final text, or a request to run one tool.
type Turn struct {
	Kind     TurnKind
	Text     string
	ToolCall *FunctionCall
}

// FinalText builds a text turn.
func FinalText(text string) Turn {
	return Turn{Kind: TurnFinalText, Text: text}
}

// ToolRequest builds a tool request turn.
func ToolRequest(call FunctionCall) Turn {
	return Turn{Kind: TurnToolRequest, ToolCall: &call}
}

// IsToolRequest reports whether the model asked for a tool.
func (t Turn) IsToolRequest() bool {
	return t.Kind == TurnToolRequest && t.ToolCall != nil
}

// SessionOptions are generation parameters applied to every request of a session.
type SessionOptions struct {
	Temperature float64
	MaxTokens   int
}

// Gateway opens chat sessions against a Generator.
type Gateway struct {
	gen  Generator
	opts SessionOptions
}

// NewGateway creates a Gateway.
func NewGateway(gen Generator, opts SessionOptions) *Gateway {
	return &Gateway{gen: gen, opts: opts}
}

// StartSession opens a session seeded with history. history is copied.
func (g *Gateway) StartSession(systemInstruction string, tools []Tool, history []Message) *Session {
	s := &Session{
		gen:      g.gen,
		opts:     g.opts,
		tools:    tools,
		messages: append([]Message(nil), history...),
	}
	if systemInstruction != "" {
		s.system = &Message{Parts: []Part{{Text: systemInstruction}}}
	}
	return s
}

// Session is one model conversation. It is used by a single request and is not safe for concurrent use.
type Session struct {
	gen      Generator
	opts     SessionOptions
	system   *Message
	tools    []Tool
	messages []Message
	pending  *FunctionCall
}

// Send appends a user message and returns the model's turn.
func (s *Session) Send(ctx context.Context, text string) (Turn, error) {
	s.messages = append(s.messages, Message{Role: RoleUser, Parts: []Part{{Text: text}}})
	return s.generate(ctx)
}

// SendToolResult answers the pending tool request and returns the model's next turn.
func (s *Session) SendToolResult(ctx context.Context, name string, payload interface{}) (Turn, error) {
	if s.pending == nil {
		return Turn{}, ErrNoPendingToolCall
	}
	if s.pending.Name != name {
		return Turn{}, fmt.Errorf("%w: result for %q but %q was requested", ErrNoPendingToolCall, name, s.pending.Name)
	}

	s.messages = append(s.messages, Message{
		Role: RoleFunction,
		Parts: []Part{{FunctionResponse: &FunctionResponse{
			ID:       s.pending.ID,
			Name:     name,
			Response: payload,
		}}},
	})
	s.pending = nil
	return s.generate(ctx)
}

// Messages returns the session transcript so far.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

func (s *Session) generate(ctx context.Context) (Turn, error) {
	resp, err := s.gen.GenerateContent(ctx, &Request{
		SystemInstruction: s.system,
		Messages:          s.messages,
		Tools:             s.tools,
		Temperature:       s.opts.Temperature,
		MaxTokens:         s.opts.MaxTokens,
	})
	if err != nil {
		return Turn{}, err
	}

	reply := resp.Content
	reply.Role = RoleModel

	if fc := reply.FunctionCall(); fc != nil {
		call := *fc
		// one call is answered per turn; the transcript must not carry calls without a response
		reply.Parts = keepFirstCall(reply.Parts)
		s.messages = append(s.messages, reply)
		s.pending = &call
		return ToolRequest(call), nil
	}
	s.messages = append(s.messages, reply)
	return FinalText(reply.Text()), nil
}

// keepFirstCall drops every function call part after the first.
func keepFirstCall(parts []Part) []Part {
	out := make([]Part, 0, len(parts))
	seen := false
	for _, p := range parts {
		if p.FunctionCall != nil {
			if seen {
				continue
			}
			seen = true
		}
		out = append(out, p)
	}
	return out
}
