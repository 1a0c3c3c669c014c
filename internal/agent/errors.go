package agent

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool is returned by Invoke for names that were never registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrDuplicateTool is returned by Register when the name is taken.
	ErrDuplicateTool = errors.New("duplicate tool")

	// ErrInvalidSchema is returned by Register when the parameter schema does not compile.
	ErrInvalidSchema = errors.New("invalid tool schema")

	// ErrInvalidArguments marks arguments rejected by the tool schema or argument struct.
	ErrInvalidArguments = errors.New("invalid tool arguments")

	// ErrToolTimeout marks an execution that exceeded its timeout.
	ErrToolTimeout = errors.New("tool timed out")
)

// ToolExecutionError wraps a failure raised by a tool.
type ToolExecutionError struct {
	Tool ToolName
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %s: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}
