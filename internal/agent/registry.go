package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fulano-assistant/pkg/llmprovider"
	"fulano-assistant/pkg/log"
	"fulano-assistant/pkg/metrics"

	"github.com/xeipuuv/gojsonschema"
)

// ToolRegistry manages available tools. Register during startup; Invoke is safe for concurrent use.
type ToolRegistry struct {
	mu             sync.RWMutex
	tools          map[ToolName]registeredTool
	defaultTimeout time.Duration
	l              log.Logger
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry(l log.Logger, defaultTimeout time.Duration) *ToolRegistry {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultToolTimeout
	}
	return &ToolRegistry{
		tools:          make(map[ToolName]registeredTool),
		defaultTimeout: defaultTimeout,
		l:              l,
	}
}

// Register adds a tool to the registry. Names must be unique and schemas must compile.
func (r *ToolRegistry) Register(tool Tool) error {
	name := tool.Name()
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSchema)
	}

	params := tool.Parameters()
	if params == nil {
		params = map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(params))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSchema, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = registeredTool{
		tool:   tool,
		schema: schema,
		def: llmprovider.Tool{
			Name:        string(name),
			Description: tool.Description(),
			Parameters:  params,
		},
	}
	return nil
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name ToolName) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tools[name]
	return rt.tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]Tool, 0, len(r.tools))
	for _, rt := range r.tools {
		tools = append(tools, rt.tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format, sorted by name.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]llmprovider.Tool, 0, len(r.tools))
	for _, rt := range r.tools {
		defs = append(defs, rt.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Invoke runs the named tool once, without retries.
// An unregistered name returns ErrUnknownTool. Every other failure, including
// schema violations, timeouts and panics, comes back as a ToolResult with IsError set.
func (r *ToolRegistry) Invoke(ctx context.Context, name ToolName, args map[string]interface{}) (ToolResult, error) {
	r.mu.RLock()
	rt, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		metrics.ToolInvocations.WithLabelValues("unknown", metrics.OutcomeError).Inc()
		return ToolResult{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	if err := validateArgs(rt.schema, args); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixInvoke, name, err)
		metrics.ToolInvocations.WithLabelValues(string(name), metrics.OutcomeError).Inc()
		return errorResult(name, err), nil
	}

	timeout := rt.tool.Timeout()
	if timeout <= 0 {
		timeout = r.defaultTimeout
	}

	payload, err := execute(ctx, rt.tool, args, timeout)
	metrics.ToolInvocations.WithLabelValues(string(name), metrics.Outcome(err)).Inc()
	if err != nil {
		err = &ToolExecutionError{Tool: name, Err: err}
		r.l.Warnf(ctx, "%s: %v", LogPrefixInvoke, err)
		return errorResult(name, err), nil
	}

	return ToolResult{Name: name, Payload: toPayload(payload)}, nil
}

type execOutcome struct {
	payload interface{}
	err     error
}

// execute bounds the tool by timeout even when it ignores its context.
func execute(ctx context.Context, tool Tool, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan execOutcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- execOutcome{err: fmt.Errorf("panic: %v", rec)}
			}
		}()
		payload, err := tool.Execute(ctx, args)
		done <- execOutcome{payload: payload, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrToolTimeout, timeout)
		}
		return out.payload, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrToolTimeout, timeout)
		}
		return nil, ctx.Err()
	}
}

func validateArgs(schema *gojsonschema.Schema, args map[string]interface{}) error {
	res, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidArguments, strings.Join(msgs, "; "))
}

func errorResult(name ToolName, err error) ToolResult {
	return ToolResult{
		Name:    name,
		Payload: map[string]interface{}{PayloadKeyMessage: err.Error()},
		IsError: true,
	}
}

// toPayload normalizes a tool return value to a JSON object.
func toPayload(v interface{}) map[string]interface{} {
	switch p := v.(type) {
	case map[string]interface{}:
		return p
	case nil:
		return map[string]interface{}{}
	default:
		return map[string]interface{}{PayloadKeyResult: p}
	}
}
