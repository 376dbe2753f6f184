package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHTMLFallbackPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "pdf suffix swapped",
			input:    "out/resume.pdf",
			expected: "out/resume.html",
		},
		{
			name:     "no pdf suffix appended",
			input:    "out/resume",
			expected: "out/resume.html",
		},
		{
			name:     "pdf elsewhere in name untouched",
			input:    "out/my.pdf.backup.pdf",
			expected: "out/my.pdf.backup.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HTMLFallbackPath(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestWriteHTML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "resume.html")

	content := "<html><body>A. Lee</body></html>"
	err := WriteHTML(content, path)
	if err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if !strings.Contains(string(data), "A. Lee") {
		t.Errorf("Written HTML missing content: %s", string(data))
	}
}
