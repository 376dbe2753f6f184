package llm

import (
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"test\": \"value\"}\n```",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "bare fence",
			input:    "```\n{\"test\": \"value\"}\n```",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "no fence",
			input:    "{\"test\": \"value\"}",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "surrounding whitespace",
			input:    "\n  ```json\n{\"test\": \"value\"}\n```  \n",
			expected: "{\"test\": \"value\"}",
		},
		{
			name:     "multiline json",
			input:    "```json\n{\n  \"a\": 1,\n  \"b\": [2, 3]\n}\n```",
			expected: "{\n  \"a\": 1,\n  \"b\": [2, 3]\n}",
		},
		{
			name:     "plain text untouched",
			input:    "This is plain text",
			expected: "This is plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripCodeFences(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParseResume(t *testing.T) {
	res, err := ParseResume(`{"name": "A. Lee", "skills": ["Go"]}`)
	if err != nil {
		t.Fatalf("ParseResume failed: %v", err)
	}

	if res["name"] != "A. Lee" {
		t.Errorf("Expected name 'A. Lee', got %v", res["name"])
	}
}

func TestParseResumeInvalid(t *testing.T) {
	_, err := ParseResume("not json at all")
	if err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}
