package suggest

import (
	"reflect"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"titles\":\"One, Two\"}\n```",
			want: `{"titles":"One, Two"}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "uppercase fence marker",
			in:   "```JSON\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "no fence",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "leading fence only",
			in:   "```json\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```json\n{\"a\":1}\n```  \n",
			want: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	t.Run("fenced JSON parses", func(t *testing.T) {
		payload, ok := ParseJSON("```json\n{\"titles\":\"One, Two\"}\n```")
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		want := map[string]interface{}{"titles": "One, Two"}
		if !reflect.DeepEqual(payload, want) {
			t.Errorf("payload = %v, want %v", payload, want)
		}
	})

	t.Run("clean JSON parses", func(t *testing.T) {
		if _, ok := ParseJSON(`{"titles":"A"}`); !ok {
			t.Error("expected parse to succeed")
		}
	})

	t.Run("embedded fence markers inside JSON are preserved", func(t *testing.T) {
		raw := "{\"titles\":\"use ``` for code\"}"
		payload, ok := ParseJSON(raw)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		obj, isObj := payload.(map[string]interface{})
		if !isObj || obj["titles"] != "use ``` for code" {
			t.Errorf("payload = %v, want embedded backticks intact", payload)
		}
	})

	t.Run("fenced garbage fails both attempts", func(t *testing.T) {
		payload, ok := ParseJSON("```json\nnot json at all\n```")
		if ok {
			t.Error("expected parse to fail")
		}
		if payload != nil {
			t.Errorf("payload = %v, want nil", payload)
		}
	})

	t.Run("plain prose fails", func(t *testing.T) {
		payload, ok := ParseJSON("Here are some titles you might like")
		if ok {
			t.Error("expected parse to fail")
		}
		if payload != nil {
			t.Errorf("payload = %v, want nil", payload)
		}
	})

	t.Run("empty string fails", func(t *testing.T) {
		if _, ok := ParseJSON(""); ok {
			t.Error("expected parse to fail")
		}
	})
}
