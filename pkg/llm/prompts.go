package llm

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// authoringInstructions is the fixed block of rules appended to every tailor
// prompt. This is configuration data, not logic: conflicting guidance in it
// (don't fabricate vs. rewrite in fresh wording) is resolved by the model.
const authoringInstructions = `Instructions:
- Only include the most relevant experiences (max 4)
- Prioritize skills that match the job requirements, in Title Case (e.g. "Data Engineering", not "data engineering")
- Rewrite achievements and project descriptions to use keywords from the job description, without reusing the original wording verbatim
- Order everything by relevance to the job
- Do not invent employers, dates, skills, or accomplishments that are not in the profile
- Never use these words: synergy, passionate, results-driven, dynamic, guru, rockstar, ninja
- Keep it concise and ATS-friendly
- Use information from the user profile to tailor the professional summary to the job`

// BuildTailorPrompt assembles the single prompt sent to the completion
// backend: role instruction, serialized profile, raw job description, the
// target Output Schema, and the fixed authoring instructions. The prompt is
// one contiguous blob; no truncation or token accounting.
func BuildTailorPrompt(profile map[string]interface{}, jobDescription, schemaJSON string) (prompt string, err error) {
	var profileJSON []byte
	profileJSON, err = json.MarshalIndent(profile, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize profile")
		return prompt, err
	}

	prompt = fmt.Sprintf(`You are an expert resume writer. Given a user's profile and a job description, create a tailored resume by selecting and reordering the most relevant information.
Do not use all the information in the user's profile. If the skills, experience, or education do not pertain to the job, leave them out. Only include irrelevant information if there is not enough content.

USER PROFILE:
%s

JOB DESCRIPTION:
%s

Return ONLY a JSON object with the tailored resume content using this structure (no markdown, no commentary):
%s

%s`, string(profileJSON), jobDescription, schemaJSON, authoringInstructions)

	return prompt, err
}
