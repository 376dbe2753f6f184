package llm

import (
	"context"

	"github.com/nikogura/resume-adapter/pkg/resume"
	"github.com/nikogura/resume-adapter/pkg/schema"
)

// TailorResume runs prompt construction, the completion call, and response
// normalization as one envelope. Any failure along the way falls back to
// reshaping the raw profile into the expected resume shape: the run degrades
// but still produces output. The returned cause is nil when tailoring
// succeeded, and the triggering failure otherwise (tailored is false and res
// holds the fallback).
func TailorResume(ctx context.Context, c Completer, profile map[string]interface{}, jobDescription string, def schema.Definition) (res resume.Resume, tailored bool, cause error) {
	res, cause = tailor(ctx, c, profile, jobDescription, def)
	if cause != nil {
		res = resume.FromProfile(profile)
		return res, tailored, cause
	}

	tailored = true

	return res, tailored, cause
}

func tailor(ctx context.Context, c Completer, profile map[string]interface{}, jobDescription string, def schema.Definition) (res resume.Resume, err error) {
	var prompt string
	prompt, err = BuildTailorPrompt(profile, jobDescription, def.JSON())
	if err != nil {
		return res, err
	}

	var responseText string
	responseText, err = c.Complete(ctx, prompt)
	if err != nil {
		return res, err
	}

	res, err = ParseResume(StripCodeFences(responseText))
	if err != nil {
		return res, err
	}

	return res, err
}
