package jd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "jd.txt")

	content := "\n  Seeking a backend engineer with Python and SQL experience.  \n\n"
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	got, err := Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	expected := "Seeking a backend engineer with Python and SQL experience."
	if got != expected {
		t.Errorf("Expected trimmed content %q, got %q", expected, got)
	}
}

func TestFetchFromFileEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "jd.txt")

	err := os.WriteFile(path, []byte("   \n  "), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = Fetch(context.Background(), path)
	if err == nil {
		t.Error("Expected error for whitespace-only file, got nil")
	}
}

func TestFetchNonexistentFile(t *testing.T) {
	_, err := Fetch(context.Background(), "/nonexistent/jd.txt")
	if err == nil {
		t.Error("Expected error for nonexistent file, got nil")
	}
}

func TestFetchFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><style>body{}</style></head>
<body><script>var x = 1;</script><p>Backend engineer role</p></body></html>`))
	}))
	defer server.Close()

	got, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !strings.Contains(got, "Backend engineer role") {
		t.Errorf("Expected stripped page text, got %q", got)
	}

	if strings.Contains(got, "var x") || strings.Contains(got, "body{}") {
		t.Errorf("Script/style content leaked into result: %q", got)
	}
}

func TestFetchFromURLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for 404 response, got nil")
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "no markup here",
			expected: "no markup here",
		},
		{
			name:     "simple tags",
			input:    "<p>hello</p> <b>world</b>",
			expected: "hello world",
		},
		{
			name:     "script removed with content",
			input:    "before<script>alert(1)</script>after",
			expected: "beforeafter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripTags(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
