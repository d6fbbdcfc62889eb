package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The upstream SDK's response shape is not stable across versions and
// transports, so extraction tries a fixed priority order of strategies and
// takes the first hit. Each strategy is pure and testable against a literal
// fixture for its shape.
type extractStrategy func(v interface{}) (string, bool)

var extractStrategies = []extractStrategy{
	extractTopLevelText,
	extractNestedResponseText,
	extractOutputText,
	extractCandidates,
	extractContentParts,
	extractLiteralString,
}

// ExtractText locates the literal text payload inside an opaque model
// response. It is total: any shape, including ones no strategy anticipates,
// yields some string. It never returns an error and never panics outward.
func ExtractText(v interface{}) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = coerceString(v)
		}
	}()

	for _, strategy := range extractStrategies {
		if text, ok := strategy(v); ok {
			return text
		}
	}

	// Last resort: the caller never receives a non-string in place of text.
	return coerceString(v)
}

func extractTopLevelText(v interface{}) (string, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return "", false
	}
	return stringField(m, "text")
}

func extractNestedResponseText(v interface{}) (string, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return "", false
	}
	nested, ok := m["response"].(map[string]interface{})
	if !ok {
		return "", false
	}
	return stringField(nested, "text")
}

func extractOutputText(v interface{}) (string, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return "", false
	}
	return stringField(m, "outputText")
}

// extractCandidates handles the generateContent shape: take the first
// candidate and join the text fragments of its content parts, falling back to
// a single content.text or text field. The candidates array may sit at the
// top level or one level down under "response".
func extractCandidates(v interface{}) (string, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return "", false
	}

	candidates, ok := m["candidates"].([]interface{})
	if !ok {
		if nested, nestedOK := m["response"].(map[string]interface{}); nestedOK {
			candidates, ok = nested["candidates"].([]interface{})
		}
	}
	if !ok || len(candidates) == 0 {
		return "", false
	}

	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", false
	}

	if content, ok := candidate["content"].(map[string]interface{}); ok {
		if joined, ok := joinParts(content); ok {
			return joined, true
		}
		if text, ok := stringField(content, "text"); ok {
			return text, true
		}
	}

	return stringField(candidate, "text")
}

func extractContentParts(v interface{}) (string, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return "", false
	}
	content, ok := m["content"].(map[string]interface{})
	if !ok {
		return "", false
	}
	return joinParts(content)
}

func extractLiteralString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// joinParts concatenates the text fragments under content.parts,
// newline-joined. Parts without a text field are skipped.
func joinParts(content map[string]interface{}) (string, bool) {
	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", false
	}

	fragments := make([]string, 0, len(parts))
	for _, part := range parts {
		pm, ok := part.(map[string]interface{})
		if !ok {
			continue
		}
		if text, ok := stringField(pm, "text"); ok && text != "" {
			fragments = append(fragments, text)
		}
	}

	if len(fragments) == 0 {
		return "", false
	}
	return strings.Join(fragments, "\n"), true
}

// stringField reports the field as present whenever it holds a string,
// including the empty string.
func stringField(m map[string]interface{}, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// coerceString is the best-effort string form of an arbitrary value.
func coerceString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
