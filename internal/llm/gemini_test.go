package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mcq":     map[string]any{"type": "string"},
			"correct": map[string]any{"type": "string", "enum": []any{"a", "b", "c", "d"}},
			"options": map[string]any{"type": "object"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"mcq", "correct"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["mcq"].Type != "STRING" {
		t.Fatalf("expected STRING for mcq, got %s", schema.Properties["mcq"].Type)
	}
	if schema.Properties["options"].Type != "OBJECT" {
		t.Fatalf("expected OBJECT for options, got %s", schema.Properties["options"].Type)
	}
	if len(schema.Properties["correct"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["correct"].Enum))
	}
	if schema.Properties["tags"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for tags, got %s", schema.Properties["tags"].Type)
	}
	if schema.Properties["tags"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for tags items, got %s", schema.Properties["tags"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
