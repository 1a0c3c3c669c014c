package llmprovider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGenerator returns its responses in order and records every request.
type scriptedGenerator struct {
	responses []*Response
	errs      []error
	requests  []*Request
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	i := len(g.requests)
	cp := *req
	cp.Messages = append([]Message(nil), req.Messages...)
	g.requests = append(g.requests, &cp)
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	return g.responses[i], nil
}

func textResponse(text string) *Response {
	return &Response{Content: Message{Parts: []Part{{Text: text}}}}
}

func callResponse(id, name string, args map[string]interface{}) *Response {
	return &Response{Content: Message{Parts: []Part{{FunctionCall: &FunctionCall{ID: id, Name: name, Args: args}}}}}
}

func TestSession_SendFinalText(t *testing.T) {
	gen := &scriptedGenerator{responses: []*Response{textResponse("La fotosíntesis es...")}}
	history := []Message{
		{Role: RoleUser, Parts: []Part{{Text: "hola"}}},
		{Role: RoleModel, Parts: []Part{{Text: "¡Épale!"}}},
	}

	session := NewGateway(gen, SessionOptions{Temperature: 0.5}).StartSession("Eres Fulano", nil, history)
	turn, err := session.Send(context.Background(), "cuéntame algo sobre la fotosíntesis")
	require.NoError(t, err)

	assert.Equal(t, TurnFinalText, turn.Kind)
	assert.Equal(t, "La fotosíntesis es...", turn.Text)
	assert.False(t, turn.IsToolRequest())

	require.Len(t, gen.requests, 1)
	req := gen.requests[0]
	assert.Equal(t, "Eres Fulano", req.SystemInstruction.Text())
	assert.Equal(t, 0.5, req.Temperature)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, RoleUser, req.Messages[2].Role)
	assert.Len(t, history, 2, "caller history must not be mutated")
}

func TestSession_ToolRoundTrip(t *testing.T) {
	gen := &scriptedGenerator{responses: []*Response{
		callResponse("call_7", "echo_tool", map[string]interface{}{"x": float64(1)}),
		textResponse("done"),
	}}
	tools := []Tool{{Name: "echo_tool", Parameters: map[string]interface{}{"type": "object"}}}
	session := NewGateway(gen, SessionOptions{}).StartSession("", tools, nil)

	turn, err := session.Send(context.Background(), "eco")
	require.NoError(t, err)
	require.True(t, turn.IsToolRequest())
	assert.Equal(t, "echo_tool", turn.ToolCall.Name)
	assert.Equal(t, float64(1), turn.ToolCall.Args["x"])

	turn, err = session.SendToolResult(context.Background(), "echo_tool", map[string]interface{}{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, "done", turn.Text)

	require.Len(t, gen.requests, 2)
	assert.Nil(t, gen.requests[0].SystemInstruction)
	msgs := gen.requests[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleModel, msgs[1].Role)
	assert.Equal(t, RoleFunction, msgs[2].Role)
	fr := msgs[2].Parts[0].FunctionResponse
	require.NotNil(t, fr)
	assert.Equal(t, "call_7", fr.ID)
	assert.Equal(t, "echo_tool", fr.Name)
}

func TestSession_SendToolResultWithoutRequest(t *testing.T) {
	gen := &scriptedGenerator{responses: []*Response{textResponse("hola")}}
	session := NewGateway(gen, SessionOptions{}).StartSession("", nil, nil)

	_, err := session.SendToolResult(context.Background(), "echo_tool", nil)
	assert.True(t, errors.Is(err, ErrNoPendingToolCall))

	gen2 := &scriptedGenerator{responses: []*Response{callResponse("", "get_weather", nil)}}
	session2 := NewGateway(gen2, SessionOptions{}).StartSession("", nil, nil)
	_, err = session2.Send(context.Background(), "clima")
	require.NoError(t, err)
	_, err = session2.SendToolResult(context.Background(), "get_news", nil)
	assert.True(t, errors.Is(err, ErrNoPendingToolCall))
}

func TestSession_GeneratorError(t *testing.T) {
	boom := errors.New("boom")
	gen := &scriptedGenerator{errs: []error{boom}}
	session := NewGateway(gen, SessionOptions{}).StartSession("", nil, nil)

	_, err := session.Send(context.Background(), "hola")
	assert.ErrorIs(t, err, boom)
}

func TestSession_KeepsOnlyAnsweredCall(t *testing.T) {
	twoCalls := &Response{Content: Message{Parts: []Part{
		{Text: "Déjame revisar."},
		{FunctionCall: &FunctionCall{ID: "call-1", Name: "get_weather", Args: map[string]interface{}{"city": "Cali"}}},
		{FunctionCall: &FunctionCall{ID: "call-2", Name: "get_news", Args: map[string]interface{}{}}},
	}}}
	gen := &scriptedGenerator{responses: []*Response{twoCalls, textResponse("Hace sol en Cali.")}}

	session := NewGateway(gen, SessionOptions{}).StartSession("", nil, nil)
	turn, err := session.Send(context.Background(), "clima y noticias")
	require.NoError(t, err)
	require.True(t, turn.IsToolRequest())
	assert.Equal(t, "get_weather", turn.ToolCall.Name)

	_, err = session.SendToolResult(context.Background(), "get_weather", map[string]interface{}{"temp": 28})
	require.NoError(t, err)

	model := gen.requests[1].Messages[1]
	require.Len(t, model.Parts, 2)
	assert.Equal(t, "Déjame revisar.", model.Parts[0].Text)
	assert.Equal(t, "call-1", model.Parts[1].FunctionCall.ID)
	assert.Equal(t, "call-1", gen.requests[1].Messages[2].Parts[0].FunctionResponse.ID)
}
