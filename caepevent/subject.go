package caepevent

import (
	"encoding/json"

	"github.com/sgnl-ai/caep-transmitter-agent/caepagenterrors"
)

// ParseSubject parses the JSON-encoded subject identifier used verbatim
// as the sub_id claim. A parse failure is fatal and aborts the invocation
// before any signing or network activity.
func ParseSubject(raw string) (map[string]interface{}, error) {
	var subject map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &subject); err != nil {
		return nil, caepagenterrors.Validationf("Invalid subject JSON: %v", err)
	}

	return subject, nil
}
