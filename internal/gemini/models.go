package gemini

// Part is a single text fragment in a content block.
type Part struct {
	Text string `json:"text"`
}

// Content is a block of parts with an optional role.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Schema is the subset of the generateContent response-schema language the
// service uses to hint the output shape.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// GenerationConfig carries the fixed sampling parameters plus the JSON
// output hint.
type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	TopK             int     `json:"topK"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// generateRequest is the wire shape of a generateContent call.
type generateRequest struct {
	SystemInstruction *Content         `json:"system_instruction,omitempty"`
	Contents          []Content        `json:"contents"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

// responseSchema hints a top-level object with an optional summary block and
// titles as one comma-separated string. The model is not trusted to honor it;
// downstream parsing tolerates violation.
var responseSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"summary": {Type: "OBJECT"},
		"titles":  {Type: "STRING"},
	},
	Required: []string{"titles"},
}
