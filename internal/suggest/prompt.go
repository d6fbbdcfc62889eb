package suggest

import (
	"fmt"
	"strings"
)

// defaultSystemInstruction fixes the output contract for the model. Titles are
// requested as ONE comma-separated string so the primary parse path stays
// trivial; array and object shapes are handled downstream only as fallback.
const defaultSystemInstruction = `You are a video title writer. Given a video description you suggest short titles.

Rules:
- Suggest between 8 and 12 titles.
- Every title must be at most 45 characters long.
- Titles are concise and catchy, never clickbait.
- Respond with a single JSON object and nothing else.
- The JSON object has this shape: {"summary": {"topic": string}, "titles": string}
- "titles" is ONE string containing all titles separated by commas. Do not return an array.`

// SystemInstruction returns the fixed system prompt, or the override when the
// deployment configures one.
func SystemInstruction(override string) string {
	if s := strings.TrimSpace(override); s != "" {
		return s
	}
	return defaultSystemInstruction
}

// BuildUserPrompt lists only the fields present in the request, followed by
// the two reminder lines. Pure function of its input.
func BuildUserPrompt(req SuggestionRequest) string {
	var b strings.Builder

	if desc := strings.TrimSpace(req.Description); desc != "" {
		fmt.Fprintf(&b, "Video description: %s\n", desc)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(req.Keywords, ", "))
	}
	if niche := strings.TrimSpace(req.Niche); niche != "" {
		fmt.Fprintf(&b, "Niche: %s\n", niche)
	}
	if lang := strings.TrimSpace(req.Language); lang != "" {
		fmt.Fprintf(&b, "Target language: %s\n", lang)
	}

	b.WriteString("Respond with JSON only.\n")
	fmt.Fprintf(&b, "Every title must be at most %d characters.", MaxTitleLength)

	return b.String()
}
