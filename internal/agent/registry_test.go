package agent_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulano-assistant/internal/agent"
	"fulano-assistant/pkg/log"
)

type mockTool struct {
	name        agent.ToolName
	description string
	params      map[string]interface{}
	timeout     time.Duration
	calls       int
	execute     func(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

func (m *mockTool) Name() agent.ToolName               { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Timeout() time.Duration             { return m.timeout }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	m.calls++
	if m.execute != nil {
		return m.execute(ctx, args)
	}
	return map[string]interface{}{"ok": true}, nil
}

var echoSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x": map[string]interface{}{"type": "number"},
	},
	"required": []string{"x"},
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry(log.NewNop(), time.Second)

	tool1 := &mockTool{name: "tool1", description: "desc1", params: nil}
	tool2 := &mockTool{name: "tool2", description: "desc2", params: echoSchema}

	if err := registry.Register(tool2); err != nil {
		t.Fatalf("Register tool2: %v", err)
	}
	if err := registry.Register(tool1); err != nil {
		t.Fatalf("Register tool1: %v", err)
	}

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List tools is sorted", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(tools))
		}
		if tools[0].Name() != "tool1" {
			t.Errorf("expected tool1 first, got %s", tools[0].Name())
		}
	})

	t.Run("ToFunctionDefinitions", func(t *testing.T) {
		defs := registry.ToFunctionDefinitions()
		if len(defs) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(defs))
		}
		if defs[0].Name != "tool1" || defs[1].Name != "tool2" {
			t.Errorf("unexpected order: %s, %s", defs[0].Name, defs[1].Name)
		}
		if defs[0].Parameters == nil {
			t.Errorf("expected a default object schema for tool1")
		}
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		err := registry.Register(&mockTool{name: "tool1"})
		if !errors.Is(err, agent.ErrDuplicateTool) {
			t.Errorf("expected ErrDuplicateTool, got %v", err)
		}
	})
}

func TestRegister_InvalidSchema(t *testing.T) {
	registry := agent.NewToolRegistry(log.NewNop(), time.Second)
	err := registry.Register(&mockTool{name: "bad", params: map[string]interface{}{"type": 42}})
	if !errors.Is(err, agent.ErrInvalidSchema) {
		t.Errorf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestInvoke(t *testing.T) {
	ctx := context.Background()

	t.Run("success passes arguments through once", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		echo := &mockTool{name: "echo_tool", params: echoSchema, execute: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return args, nil
		}}
		_ = registry.Register(echo)

		res, err := registry.Invoke(ctx, "echo_tool", map[string]interface{}{"x": 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected error result: %v", res.Payload)
		}
		if echo.calls != 1 {
			t.Errorf("expected 1 call, got %d", echo.calls)
		}
		if res.Payload["x"] != 1 {
			t.Errorf("unexpected payload: %v", res.Payload)
		}
		if res.Name != "echo_tool" {
			t.Errorf("unexpected name: %s", res.Name)
		}
	})

	t.Run("unknown tool is a protocol error", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		_, err := registry.Invoke(ctx, "echo_tool", nil)
		if !errors.Is(err, agent.ErrUnknownTool) {
			t.Errorf("expected ErrUnknownTool, got %v", err)
		}
	})

	t.Run("schema violation does not execute", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		echo := &mockTool{name: "echo_tool", params: echoSchema}
		_ = registry.Register(echo)

		res, err := registry.Invoke(ctx, "echo_tool", map[string]interface{}{"x": "uno"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError || res.Message() == "" {
			t.Errorf("expected error result with message, got %+v", res)
		}
		if echo.calls != 0 {
			t.Errorf("expected tool not to run, got %d calls", echo.calls)
		}
	})

	t.Run("tool failure becomes error result", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		_ = registry.Register(&mockTool{name: "flaky", execute: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return nil, errors.New("upstream down")
		}})

		res, err := registry.Invoke(ctx, "flaky", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatal("expected IsError")
		}
		if res.Message() != "tool flaky: upstream down" {
			t.Errorf("unexpected message: %q", res.Message())
		}
	})

	t.Run("panic becomes error result", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		_ = registry.Register(&mockTool{name: "panicky", execute: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			panic("boom")
		}})

		res, err := registry.Invoke(ctx, "panicky", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatal("expected IsError")
		}
	})

	t.Run("timeout becomes error result", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		_ = registry.Register(&mockTool{name: "slow", timeout: 20 * time.Millisecond, execute: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			time.Sleep(200 * time.Millisecond)
			return "late", nil
		}})

		started := time.Now()
		res, err := registry.Invoke(ctx, "slow", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatal("expected IsError")
		}
		if time.Since(started) > 150*time.Millisecond {
			t.Errorf("Invoke did not honor the tool timeout")
		}
	})

	t.Run("scalar return is wrapped", func(t *testing.T) {
		registry := agent.NewToolRegistry(log.NewNop(), time.Second)
		_ = registry.Register(&mockTool{name: "scalar", execute: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return 64, nil
		}})

		res, _ := registry.Invoke(ctx, "scalar", nil)
		if res.Payload[agent.PayloadKeyResult] != 64 {
			t.Errorf("unexpected payload: %v", res.Payload)
		}
	})
}

func TestDecodeArgs(t *testing.T) {
	var args struct {
		City string  `json:"city"`
		N    float64 `json:"n"`
	}
	if err := agent.DecodeArgs(map[string]interface{}{"city": "Cali", "n": 2}, &args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args.City != "Cali" || args.N != 2 {
		t.Errorf("unexpected args: %+v", args)
	}

	err := agent.DecodeArgs(map[string]interface{}{"n": "dos"}, &args)
	if !errors.Is(err, agent.ErrInvalidArguments) {
		t.Errorf("expected ErrInvalidArguments, got %v", err)
	}
}
