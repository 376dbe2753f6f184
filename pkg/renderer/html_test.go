package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/resume-adapter/pkg/resume"
)

func writeTemplate(t *testing.T, name, content string) (dir string) {
	t.Helper()
	dir = t.TempDir()
	err := os.WriteFile(filepath.Join(dir, name+".html"), []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
	return dir
}

func TestRenderHTML(t *testing.T) {
	dir := writeTemplate(t, "default", `<html><body>
<h1>{{.name}}</h1>
<ul>{{range .skills}}<li>{{.}}</li>{{end}}</ul>
</body></html>`)

	res := resume.Resume{
		"name":   "A. Lee",
		"skills": []interface{}{"Python", "SQL"},
	}

	html, err := RenderHTML(dir, "default", res)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if !strings.Contains(html, "<h1>A. Lee</h1>") {
		t.Errorf("Rendered HTML missing name: %s", html)
	}

	// Skill order follows the resume data.
	pythonIdx := strings.Index(html, "Python")
	sqlIdx := strings.Index(html, "SQL")
	if pythonIdx == -1 || sqlIdx == -1 || pythonIdx > sqlIdx {
		t.Errorf("Expected skills in resume order, got: %s", html)
	}
}

func TestRenderHTMLMissingTemplate(t *testing.T) {
	dir := t.TempDir()

	_, err := RenderHTML(dir, "nonexistent", resume.Resume{})
	if err == nil {
		t.Fatal("Expected error for missing template file, got nil")
	}

	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Error should report template not found: %v", err)
	}
}

func TestRenderHTMLBadTemplate(t *testing.T) {
	dir := writeTemplate(t, "broken", "{{.name")

	_, err := RenderHTML(dir, "broken", resume.Resume{"name": "A. Lee"})
	if err == nil {
		t.Error("Expected parse error for malformed template, got nil")
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	dir := writeTemplate(t, "default", "<p>{{.name}}</p>")

	html, err := RenderHTML(dir, "default", resume.Resume{"name": "<script>x</script>"})
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Errorf("Expected field content to be escaped, got: %s", html)
	}
}
