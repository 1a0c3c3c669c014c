package agent

import (
	"encoding/json"
	"fmt"
)

// DecodeArgs copies loosely typed LLM arguments into a tool's argument struct.
func DecodeArgs(params map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
