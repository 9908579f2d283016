package validators

import "strings"

// PayloadComplete applies the console's blunt submission policy: the payload
// must be non-empty, no value may be nil, and string values may not be
// blank. There is deliberately no per-field schema; every equipment type
// shares this one rule.
func PayloadComplete(payload map[string]any) bool {
	if len(payload) == 0 {
		return false
	}

	for _, v := range payload {
		if v == nil {
			return false
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return false
		}
	}

	return true
}
