package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"fulano-assistant/pkg/gemini"
	"fulano-assistant/pkg/openaicompat"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: RoleModel, Parts: parts}
}

// OpenAIAdapter adapts pkg/openaicompat to llmprovider.Provider interface.
// One adapter serves every OpenAI-compatible vendor; name distinguishes them in logs.
type OpenAIAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client openaicompat.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Messages: convertToOpenAIMessages(req.SystemInstruction, req.Messages),
	}
	if len(req.Tools) > 0 {
		params.Tools = convertToOpenAITools(req.Tools)
		// sessions answer a single call per turn
		params.ParallelToolCalls = openai.Bool(false)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := a.client.CreateChatCompletion(ctx, params)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	content, err := convertFromOpenAIMessage(resp.Choices[0].Message)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI-compatible endpoints
func convertToOpenAIMessages(system *Message, msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs)+1)
	if system != nil {
		if text := system.Text(); text != "" {
			out = append(out, openai.SystemMessage(text))
		}
	}

	for _, msg := range msgs {
		switch msg.Role {
		case RoleModel:
			if fc := msg.FunctionCall(); fc != nil {
				argsJSON, _ := json.Marshal(fc.Args)
				out = append(out, openai.ChatCompletionMessageParamUnion{
					OfAssistant: &openai.ChatCompletionAssistantMessageParam{
						ToolCalls: []openai.ChatCompletionMessageToolCallParam{{
							ID: toolCallID(fc.ID, fc.Name),
							Function: openai.ChatCompletionMessageToolCallFunctionParam{
								Name:      fc.Name,
								Arguments: string(argsJSON),
							},
						}},
					},
				})
				continue
			}
			out = append(out, openai.AssistantMessage(msg.Text()))
		case RoleFunction:
			for _, p := range msg.Parts {
				if p.FunctionResponse == nil {
					continue
				}
				payload, _ := json.Marshal(p.FunctionResponse.Response)
				out = append(out, openai.ToolMessage(string(payload), toolCallID(p.FunctionResponse.ID, p.FunctionResponse.Name)))
			}
		default:
			out = append(out, openai.UserMessage(msg.Text()))
		}
	}
	return out
}

func convertToOpenAITools(tools []Tool) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		out[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  openai.FunctionParameters(t.Parameters),
			},
		}
	}
	return out
}

func convertFromOpenAIMessage(msg openai.ChatCompletionMessage) (Message, error) {
	parts := []Part{}
	if msg.Content != "" {
		parts = append(parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return Message{}, fmt.Errorf("%w: tool call %s has malformed arguments: %v",
					ErrMalformedResponse, tc.Function.Name, err)
			}
		}
		parts = append(parts, Part{FunctionCall: &FunctionCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		}})
	}
	return Message{Role: RoleModel, Parts: parts}, nil
}

// toolCallID keeps call and result paired when the provider did not assign an id.
func toolCallID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}
