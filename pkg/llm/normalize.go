package llm

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/nikogura/resume-adapter/pkg/resume"
)

// StripCodeFences removes a leading fenced-code-block marker and a trailing
// closing marker if present. Prefix/suffix trim only, not a markdown parser.
func StripCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)

	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	// Drop the opening fence line, with or without a language tag.
	if idx := strings.Index(cleaned, "\n"); idx != -1 {
		cleaned = cleaned[idx+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// ParseResume parses normalized response text as a structured resume.
func ParseResume(text string) (res resume.Resume, err error) {
	err = json.Unmarshal([]byte(text), &res)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse model response as JSON: %s", text)
		return res, err
	}
	return res, err
}
