package gemini

func toWireRequest(req *Request) geminiRequest {
	out := geminiRequest{Contents: make([]geminiContent, 0, len(req.Messages))}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, geminiContent{
			Role:  wireRole(msg.Role),
			Parts: toWireParts(msg.Parts),
		})
	}

	if len(req.Tools) > 0 {
		decls := make([]geminiFunctionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = geminiFunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
		}
		out.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}

// wireRole maps roles onto the two the API accepts. Function results travel as user turns.
func wireRole(role string) string {
	if role == RoleModel {
		return RoleModel
	}
	return RoleUser
}

func toWireParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i] = geminiPart{Text: p.Text}
		if p.FunctionCall != nil {
			out[i].FunctionCall = &geminiFunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			out[i].FunctionResponse = &geminiFunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return out
}

func fromWireResponse(resp *geminiResponse) *Response {
	out := &Response{Usage: &Usage{}}
	if m := resp.UsageMetadata; m != nil {
		out.Usage = &Usage{
			InputTokens:  m.PromptTokenCount,
			OutputTokens: m.CandidatesTokenCount,
			TotalTokens:  m.TotalTokenCount,
		}
	}
	if len(resp.Candidates) == 0 {
		return out
	}

	candidate := resp.Candidates[0]
	out.FinishReason = candidate.FinishReason
	out.Content = Content{Role: RoleModel, Parts: make([]Part, 0, len(candidate.Content.Parts))}
	for _, p := range candidate.Content.Parts {
		// thought summaries are not part of the answer
		if p.Thought {
			continue
		}
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		out.Content.Parts = append(out.Content.Parts, part)
	}
	return out
}
