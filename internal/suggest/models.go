package suggest

// MaxTitleLength is the hard cap on a single suggested title.
const MaxTitleLength = 45

// SuggestionRequest is the request body shared by both endpoints. Everything
// except the description is optional.
type SuggestionRequest struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Niche       string   `json:"niche,omitempty"`
	Language    string   `json:"language,omitempty"`
}

// Meta describes a successful public response.
type Meta struct {
	Count     int    `json:"count"`
	MaxLength int    `json:"maxLength"`
	Model     string `json:"model"`
}

// SuggestionResult is the public endpoint's success body.
type SuggestionResult struct {
	Titles []string `json:"titles"`
	Meta   Meta     `json:"meta"`
}
