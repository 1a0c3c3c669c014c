package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Timestamp is a point in time that serializes as UTC TimestampFormat, whatever the server zone.
type Timestamp time.Time

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(ts).UTC().Format(TimestampFormat))
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := time.Parse(TimestampFormat, s)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*ts = Timestamp(parsed)
	return nil
}

// Time returns the wrapped time.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}
