package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) IGemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{APIKey: "test-key", Model: "gemini-test", APIURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	client, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Errorf("expected default model %s, got %s", DefaultModel, client.Model())
	}
}

func TestGenerateContent_ToolRoundTrip(t *testing.T) {
	var got geminiRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-test:generateContent" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("expected API key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"finishReason": "STOP", "content": {"role": "model", "parts": [
				{"text": "pensando en el clima", "thought": true},
				{"functionCall": {"name": "get_weather", "args": {"city": "Caracas"}}}
			]}}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 3, "totalTokenCount": 13}
		}`))
	})

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Content{Parts: []Part{{Text: "Eres Fulano"}}},
		Messages: []Content{
			{Role: "user", Parts: []Part{{Text: "¿cómo está el clima en Caracas?"}}},
			{Role: "model", Parts: []Part{{FunctionCall: &FunctionCall{Name: "get_weather", Args: map[string]interface{}{"city": "Caracas"}}}}},
			{Role: "function", Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "get_weather", Response: map[string]interface{}{"temp": 31}}}}},
		},
		Tools: []Tool{{Name: "get_weather", Description: "Clima actual", Parameters: map[string]interface{}{"type": "object"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "Eres Fulano" {
		t.Errorf("system instruction not forwarded: %+v", got.SystemInstruction)
	}
	if len(got.Tools) != 1 || got.Tools[0].FunctionDeclarations[0].Name != "get_weather" {
		t.Errorf("tools not forwarded: %+v", got.Tools)
	}
	roles := []string{got.Contents[0].Role, got.Contents[1].Role, got.Contents[2].Role}
	if roles[0] != RoleUser || roles[1] != RoleModel || roles[2] != RoleUser {
		t.Errorf("unexpected wire roles %v", roles)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].FunctionCall == nil {
		t.Fatalf("expected only the function call part, got %+v", resp.Content.Parts)
	}
	if resp.Content.Parts[0].FunctionCall.Args["city"] != "Caracas" {
		t.Errorf("unexpected args: %v", resp.Content.Parts[0].FunctionCall.Args)
	}
	if resp.FinishReason != FinishStop || resp.Usage.TotalTokens != 13 {
		t.Errorf("unexpected finish reason %q or usage %+v", resp.FinishReason, resp.Usage)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Parts: []Part{{Text: "hola"}}}},
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 429 || apiErr.Status != "RESOURCE_EXHAUSTED" || apiErr.Message != "Quota exceeded" {
		t.Errorf("unexpected error %+v", apiErr)
	}
	if !IsTemporary(err) {
		t.Error("expected 429 to be temporary")
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Errorf("API key leaked into error: %v", err)
	}
}

func TestGenerateContent_PlainTextError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadRequest)
	})

	_, err := client.GenerateContent(context.Background(), &Request{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "bad gateway" {
		t.Fatalf("expected raw body as message, got %v", err)
	}
	if IsTemporary(err) {
		t.Error("expected 400 not to be temporary")
	}
}

func TestGenerateContent_TransportErrorOmitsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, _ := New(Config{APIKey: "SUPERSECRETKEY", APIURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if strings.Contains(err.Error(), "SUPERSECRETKEY") {
		t.Errorf("API key leaked into error: %v", err)
	}
}

func TestGenerateContent_PromptBlocked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": [], "promptFeedback": {"blockReason": "SAFETY"}}`))
	})

	_, err := client.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrPromptBlocked) {
		t.Fatalf("expected ErrPromptBlocked, got %v", err)
	}
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	resp, err := client.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Content.Parts) != 0 {
		t.Errorf("expected empty content, got %+v", resp.Content)
	}
}
