package suggest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// titleFields are probed in order on title-like objects.
var titleFields = []string{"title", "text", "suggestion"}

// NormalizeTitles reduces a parsed model payload to a clean title list. The
// payload's titles field (or suggestions, when titles is absent) may be a
// comma-joined string, an array of strings, an array of title-like objects,
// or a single title-like object; anything else produces no titles.
//
// The result is trimmed, empty-free, capped at MaxTitleLength characters per
// entry, and deduplicated preserving first-occurrence order. Normalization is
// idempotent: re-normalizing {"titles": <result>} yields the same list.
func NormalizeTitles(payload interface{}) []string {
	obj, ok := payload.(map[string]interface{})
	if !ok {
		return nil
	}

	value, present := obj["titles"]
	if !present {
		value = obj["suggestions"]
	}

	var raw []string
	switch v := value.(type) {
	case string:
		for _, segment := range strings.Split(v, ",") {
			if s := strings.TrimSpace(segment); s != "" {
				raw = append(raw, s)
			}
		}
	case []interface{}:
		for _, element := range v {
			raw = append(raw, titleFromElement(element))
		}
	case map[string]interface{}:
		// A bare object is only a title if it carries a known field; the
		// first-string-property fallback applies to array elements alone.
		if title, ok := knownTitleField(v); ok {
			raw = append(raw, title)
		}
	}

	return postProcess(raw)
}

// titleFromElement turns one array element into a candidate title: strings
// pass through, objects are probed for a title-like field, anything else is
// stringified.
func titleFromElement(element interface{}) string {
	switch e := element.(type) {
	case string:
		return strings.TrimSpace(e)
	case map[string]interface{}:
		if title, ok := titleFromObject(e); ok {
			return title
		}
		// No title-like field and no string property at all.
		return stringify(e)
	default:
		return stringify(element)
	}
}

// knownTitleField probes the title fields in order.
func knownTitleField(obj map[string]interface{}) (string, bool) {
	for _, field := range titleFields {
		if s, ok := obj[field].(string); ok {
			return strings.TrimSpace(s), true
		}
	}
	return "", false
}

// titleFromObject probes the known title fields, then falls back to the first
// string-valued property in sorted key order.
func titleFromObject(obj map[string]interface{}) (string, bool) {
	if title, ok := knownTitleField(obj); ok {
		return title, true
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if s, ok := obj[k].(string); ok {
			return strings.TrimSpace(s), true
		}
	}

	return "", false
}

func stringify(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// postProcess applies the uniform pipeline regardless of source shape: trim,
// drop empties, truncate to MaxTitleLength characters (re-trimming any
// trailing whitespace the cut exposes), and deduplicate by exact equality
// preserving first-occurrence order.
func postProcess(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))

	for _, title := range titles {
		t := strings.TrimSpace(title)
		if t == "" {
			continue
		}

		if runes := []rune(t); len(runes) > MaxTitleLength {
			t = strings.TrimRightFunc(string(runes[:MaxTitleLength]), unicode.IsSpace)
		}
		if t == "" {
			continue
		}

		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
