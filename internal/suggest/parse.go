package suggest

import (
	"encoding/json"
	"strings"
)

// StripFences removes a leading ```json or ``` fence marker
// (case-insensitive) and a trailing ``` from model output.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "```json"):
		s = s[len("```json"):]
	case strings.HasPrefix(lower, "```"):
		s = s[len("```"):]
	}
	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}

	return strings.TrimSpace(s)
}

// ParseJSON attempts a strict decode of the fence-stripped text, then of the
// original text. The fallback covers models that return clean JSON despite
// matching a spurious fence pattern, and vice versa. ok is false when the
// model returned non-JSON output.
func ParseJSON(raw string) (payload interface{}, ok bool) {
	if err := json.Unmarshal([]byte(StripFences(raw)), &payload); err == nil {
		return payload, true
	}

	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		return payload, true
	}

	return nil, false
}
