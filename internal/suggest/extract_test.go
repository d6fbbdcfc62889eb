package suggest

import (
	"testing"
)

func TestExtractTextStrategies(t *testing.T) {
	tests := []struct {
		name     string
		response interface{}
		want     string
	}{
		{
			name:     "top-level text field",
			response: map[string]interface{}{"text": "hello"},
			want:     "hello",
		},
		{
			name: "text nested under response",
			response: map[string]interface{}{
				"response": map[string]interface{}{"text": "nested"},
			},
			want: "nested",
		},
		{
			name:     "outputText field",
			response: map[string]interface{}{"outputText": "legacy"},
			want:     "legacy",
		},
		{
			name: "candidates with content parts joined by newline",
			response: map[string]interface{}{
				"candidates": []interface{}{
					map[string]interface{}{
						"content": map[string]interface{}{
							"parts": []interface{}{
								map[string]interface{}{"text": "first"},
								map[string]interface{}{"text": "second"},
							},
						},
					},
				},
			},
			want: "first\nsecond",
		},
		{
			name: "candidates nested under response",
			response: map[string]interface{}{
				"response": map[string]interface{}{
					"candidates": []interface{}{
						map[string]interface{}{
							"content": map[string]interface{}{
								"parts": []interface{}{
									map[string]interface{}{"text": "deep"},
								},
							},
						},
					},
				},
			},
			want: "deep",
		},
		{
			name: "candidate content.text fallback",
			response: map[string]interface{}{
				"candidates": []interface{}{
					map[string]interface{}{
						"content": map[string]interface{}{"text": "plain"},
					},
				},
			},
			want: "plain",
		},
		{
			name: "candidate text fallback",
			response: map[string]interface{}{
				"candidates": []interface{}{
					map[string]interface{}{"text": "bare"},
				},
			},
			want: "bare",
		},
		{
			name: "top-level content parts",
			response: map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"text": "one"},
						map[string]interface{}{"text": "two"},
					},
				},
			},
			want: "one\ntwo",
		},
		{
			name:     "empty top-level text field still counts as text",
			response: map[string]interface{}{"text": ""},
			want:     "",
		},
		{
			name:     "response already a string",
			response: "verbatim",
			want:     "verbatim",
		},
		{
			name:     "unknown object serialized as JSON",
			response: map[string]interface{}{"weird": true},
			want:     `{"weird":true}`,
		},
		{
			name:     "nil response",
			response: nil,
			want:     "null",
		},
		{
			name: "malformed candidates do not break extraction",
			response: map[string]interface{}{
				"candidates": "not an array",
			},
			want: `{"candidates":"not an array"}`,
		},
		{
			name: "parts without text fall through to serialization",
			response: map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"inlineData": "...."},
					},
				},
			},
			want: `{"content":{"parts":[{"inlineData":"...."}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(tt.response); got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTextPriorityOrder(t *testing.T) {
	// When several shapes match, the earliest strategy wins.
	response := map[string]interface{}{
		"text":       "winner",
		"outputText": "loser",
		"candidates": []interface{}{
			map[string]interface{}{"text": "also loser"},
		},
	}

	if got := ExtractText(response); got != "winner" {
		t.Errorf("ExtractText() = %q, want %q", got, "winner")
	}
}

func TestExtractTextIsTotal(t *testing.T) {
	// Unserializable values must still come back as some string.
	if got := ExtractText(func() {}); got == "" {
		t.Error("ExtractText returned empty string for unserializable value")
	}
}
