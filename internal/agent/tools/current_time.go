package tools

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"fulano-assistant/internal/agent"
)

// CurrentTimeTool reports the wall clock in a timezone.
type CurrentTimeTool struct {
	timezone string
	timeout  time.Duration
	now      func() time.Time
}

func NewCurrentTimeTool(timezone string, timeout time.Duration) *CurrentTimeTool {
	if timezone == "" {
		timezone = defaultTimezone
	}
	return &CurrentTimeTool{timezone: timezone, timeout: timeout, now: time.Now}
}

// WithClock replaces the clock, for tests.
func (t *CurrentTimeTool) WithClock(now func() time.Time) *CurrentTimeTool {
	t.now = now
	return t
}

func (t *CurrentTimeTool) Name() agent.ToolName {
	return NameCurrentTime
}

func (t *CurrentTimeTool) Description() string {
	return "Obtiene la hora y la fecha actuales. Por defecto usa la zona horaria de Colombia."
}

func (t *CurrentTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"timezone": map[string]interface{}{
				"type":        "string",
				"description": "IANA timezone, e.g. 'America/Bogota' or 'America/Caracas'",
			},
		},
	}
}

func (t *CurrentTimeTool) Timeout() time.Duration {
	return t.timeout
}

type CurrentTimeInput struct {
	Timezone string `json:"timezone"`
}

func (t *CurrentTimeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var input CurrentTimeInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}
	tz := input.Timezone
	if tz == "" {
		tz = t.timezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, tz)
	}

	now := t.now().In(loc)
	return map[string]interface{}{
		"time":     now.Format(timeLayout),
		"date":     now.Format(dateLayout),
		"timezone": tz,
	}, nil
}

var _ agent.Tool = (*CurrentTimeTool)(nil)
