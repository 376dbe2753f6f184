// Package schema holds the named Output Schema variants the model is asked
// to produce. Each definition is a free-form shape description keyed by
// template name; definitions are shown to the model verbatim and never
// enforced against its answer.
package schema

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition describes the exact field names and nesting expected in the
// model's answer for one template.
type Definition map[string]interface{}

// JSON serializes the definition as indented JSON for embedding in a prompt.
func (d Definition) JSON() (out string) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		// Definitions come from YAML maps with string keys, which always marshal.
		return out
	}
	out = string(data)
	return out
}

// Table maps template names to their Output Schema definitions.
type Table map[string]Definition

// Load reads a schema table from a YAML file.
func Load(path string) (table Table, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read schema file: %s", path)
		return table, err
	}

	err = yaml.Unmarshal(data, &table)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse schema file: %s", path)
		return table, err
	}

	if len(table) == 0 {
		err = errors.Errorf("schema file defines no templates: %s", path)
		return table, err
	}

	return table, err
}

// Lookup returns the definition for the given template name. A missing name
// is an error the caller must treat as fatal for the run.
func (t Table) Lookup(name string) (def Definition, err error) {
	def, found := t[name]
	if !found {
		err = errors.Errorf("unknown template %q (available: %v)", name, t.Names())
		return def, err
	}
	return def, err
}

// Names returns the template names in the table, sorted.
func (t Table) Names() (names []string) {
	names = make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteDefault writes the built-in schema table to the given path.
func WriteDefault(path string) (err error) {
	err = os.WriteFile(path, []byte(defaultTableYAML), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write schema file: %s", path)
		return err
	}
	return err
}

// defaultTableYAML ships the built-in Output Schema variants. The values are
// authoring hints for the model, not validation rules.
const defaultTableYAML = `default:
  name: Full Name
  contact:
    email: email@example.com
    phone: phone number
    location: city, state
    linkedin: linkedin url
    github: github url
  professional_summary: 2-3 sentence summary tailored to this job
  skills:
    - skill1
    - skill2
    - skill3
  experience:
    - company: Company Name
      position: Job Title
      duration: Start - End Date
      achievements:
        - achievement 1
        - achievement 2
  education:
    - institution: School Name
      degree: Degree Type
      field: Field of Study
      graduation: Year
  projects:
    - name: Project Name
      description: Brief description
      technologies:
        - tech1
        - tech2
compact:
  name: Full Name
  contact:
    email: email@example.com
    location: city, state
  professional_summary: 1-2 sentence summary tailored to this job
  skills:
    - skill1
    - skill2
  experience:
    - company: Company Name
      position: Job Title
      duration: Start - End Date
      achievements:
        - achievement 1
  education:
    - institution: School Name
      degree: Degree Type
      graduation: Year
  projects: []
`
