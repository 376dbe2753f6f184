package renderer

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/nikogura/resume-adapter/pkg/resume"
)

// RenderHTML resolves the named template from the templates directory and
// fills it with the resume's top-level fields. A missing template file is a
// fatal not-found error before any rendering is attempted. Rendering
// semantics for missing resume fields are the template engine's; they are not
// corrected here.
func RenderHTML(templatesDir, name string, res resume.Resume) (html string, err error) {
	path := filepath.Join(templatesDir, name+".html")

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		err = errors.Errorf("template file not found: %s", path)
		return html, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read template file: %s", path)
		return html, err
	}

	var tmpl *template.Template
	tmpl, err = template.New(name).Parse(string(data))
	if err != nil {
		err = errors.Wrapf(err, "failed to parse template: %s", path)
		return html, err
	}

	buf := bytes.Buffer{}
	err = tmpl.Execute(&buf, map[string]interface{}(res))
	if err != nil {
		err = errors.Wrapf(err, "failed to render template: %s", path)
		return html, err
	}

	html = buf.String()

	return html, err
}
