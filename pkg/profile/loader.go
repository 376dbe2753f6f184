package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a profile file and parses it by extension: .yaml/.yml files are
// parsed as YAML, everything else as JSON. The result is an unordered bag of
// candidate attributes, passed through unvalidated.
func Load(path string) (profile map[string]interface{}, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return profile, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, &profile)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse profile YAML: %s", path)
			return profile, err
		}
		return profile, err
	}

	err = json.Unmarshal(data, &profile)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile JSON: %s", path)
		return profile, err
	}

	return profile, err
}
