package renderer

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteDefaultTemplates writes the built-in template files into dir so a
// fresh install can render without checking out the repository.
func WriteDefaultTemplates(dir string) (err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create templates directory: %s", dir)
		return err
	}

	builtins := map[string]string{
		"default.html": defaultTemplateHTML,
		"compact.html": compactTemplateHTML,
	}

	for name, content := range builtins {
		path := filepath.Join(dir, name)
		err = os.WriteFile(path, []byte(content), 0600)
		if err != nil {
			err = errors.Wrapf(err, "failed to write template file: %s", path)
			return err
		}
	}

	return err
}

const defaultTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: Georgia, serif; color: #222; margin: 0; }
  h1 { margin-bottom: 2px; font-size: 26px; }
  h2 { border-bottom: 1px solid #999; font-size: 16px; margin-top: 18px; }
  .contact { color: #555; font-size: 12px; margin-bottom: 10px; }
  .entry { margin-bottom: 10px; }
  .entry-head { font-weight: bold; }
  .duration { color: #555; font-style: italic; }
  ul { margin: 4px 0; padding-left: 18px; }
  .skills li { display: inline; }
  .skills li:after { content: " \2022  "; color: #999; }
  .skills li:last-child:after { content: ""; }
</style>
</head>
<body>
<h1>{{.name}}</h1>
<div class="contact">
  {{with .contact}}{{.email}} {{.phone}} {{.location}} {{.linkedin}} {{.github}}{{end}}
</div>
{{if .professional_summary}}
<h2>Summary</h2>
<p>{{.professional_summary}}</p>
{{end}}
{{if .skills}}
<h2>Skills</h2>
<ul class="skills">{{range .skills}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .experience}}
<h2>Experience</h2>
{{range .experience}}
<div class="entry">
  <div class="entry-head">{{.position}} &mdash; {{.company}} <span class="duration">{{.duration}}</span></div>
  <ul>{{range .achievements}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
{{end}}
{{if .education}}
<h2>Education</h2>
{{range .education}}
<div class="entry">
  <div class="entry-head">{{.degree}}{{if .field}}, {{.field}}{{end}} &mdash; {{.institution}} <span class="duration">{{.graduation}}</span></div>
</div>
{{end}}
{{end}}
{{if .projects}}
<h2>Projects</h2>
{{range .projects}}
<div class="entry">
  <div class="entry-head">{{.name}}</div>
  <p>{{.description}}</p>
  <ul class="skills">{{range .technologies}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
{{end}}
</body>
</html>
`

const compactTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #111; font-size: 12px; margin: 0; }
  h1 { margin-bottom: 0; font-size: 20px; }
  h2 { font-size: 13px; text-transform: uppercase; letter-spacing: 1px; margin-top: 12px; }
  .contact { color: #555; font-size: 11px; }
  .entry { margin-bottom: 6px; }
  ul { margin: 2px 0; padding-left: 16px; }
</style>
</head>
<body>
<h1>{{.name}}</h1>
<div class="contact">{{with .contact}}{{.email}} {{.location}}{{end}}</div>
{{if .professional_summary}}<p>{{.professional_summary}}</p>{{end}}
{{if .skills}}
<h2>Skills</h2>
<p>{{range .skills}}{{.}} {{end}}</p>
{{end}}
{{if .experience}}
<h2>Experience</h2>
{{range .experience}}
<div class="entry">
  <b>{{.position}}</b>, {{.company}} ({{.duration}})
  <ul>{{range .achievements}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}
{{end}}
{{if .education}}
<h2>Education</h2>
{{range .education}}
<div class="entry">{{.degree}} &mdash; {{.institution}} ({{.graduation}})</div>
{{end}}
{{end}}
</body>
</html>
`
