package agent

import "time"

// Log prefixes
const (
	LogPrefixInvoke = "internal.agent.ToolRegistry.Invoke"
)

// Payload keys
const (
	PayloadKeyMessage = "message"
	PayloadKeyResult  = "result"
)

// DefaultToolTimeout applies to tools that do not declare their own.
const DefaultToolTimeout = 15 * time.Second
