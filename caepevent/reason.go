package caepevent

import "encoding/json"

// ParseReason interprets a reason parameter as either an i18n map (a JSON
// object keyed by locale) or plain text. Anything that fails to parse as
// JSON, or parses to a primitive, is returned as the original string.
// Empty input passes through unparsed.
func ParseReason(raw string) interface{} {
	if raw == "" {
		return raw
	}

	var parsed interface{}

	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}

	switch parsed.(type) {
	case map[string]interface{}, []interface{}:
		return parsed
	default:
		return raw
	}
}
