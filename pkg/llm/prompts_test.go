package llm

import (
	"strings"
	"testing"
)

func TestBuildTailorPrompt(t *testing.T) {
	profile := map[string]interface{}{
		"name":   "A. Lee",
		"skills": []interface{}{"Python", "SQL"},
	}
	jobDescription := "Seeking a backend engineer with Python and SQL experience"
	schemaJSON := `{"name": "Full Name", "skills": ["skill1"]}`

	prompt, err := BuildTailorPrompt(profile, jobDescription, schemaJSON)
	if err != nil {
		t.Fatalf("BuildTailorPrompt failed: %v", err)
	}

	// All four sections land in one contiguous blob.
	if !strings.Contains(prompt, "USER PROFILE:") {
		t.Error("Prompt missing profile section")
	}
	if !strings.Contains(prompt, `"A. Lee"`) {
		t.Error("Prompt missing serialized profile data")
	}
	if !strings.Contains(prompt, jobDescription) {
		t.Error("Prompt missing job description")
	}
	if !strings.Contains(prompt, schemaJSON) {
		t.Error("Prompt missing output schema")
	}
	if !strings.Contains(prompt, "Instructions:") {
		t.Error("Prompt missing authoring instructions")
	}
}

func TestBuildTailorPromptInstructions(t *testing.T) {
	prompt, err := BuildTailorPrompt(map[string]interface{}{}, "jd", "{}")
	if err != nil {
		t.Fatalf("BuildTailorPrompt failed: %v", err)
	}

	// The fixed rules ride along on every prompt.
	for _, rule := range []string{
		"max 4",
		"Title Case",
		"Do not invent",
		"Never use these words",
		"ATS-friendly",
	} {
		if !strings.Contains(prompt, rule) {
			t.Errorf("Prompt missing instruction %q", rule)
		}
	}
}

func TestBuildTailorPromptUnserializableProfile(t *testing.T) {
	profile := map[string]interface{}{
		"bad": func() {},
	}

	_, err := BuildTailorPrompt(profile, "jd", "{}")
	if err == nil {
		t.Error("Expected error for unserializable profile, got nil")
	}
}
