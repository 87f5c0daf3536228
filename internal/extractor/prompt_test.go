package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobdesk/internal/domain"
	"jobdesk/internal/extractor"
)

func TestBuildResumePrompt_NoJobContext(t *testing.T) {
	prompt := extractor.BuildResumePrompt(nil)

	for _, key := range []string{`"name"`, `"website"`, `"linkedin"`, `"email"`} {
		assert.Contains(t, prompt, key)
	}
	assert.NotContains(t, prompt, "match_score", "no scoring fields without a job context")
	assert.Contains(t, prompt, "use null for that field")
	assert.Contains(t, prompt, "valid JSON object")
}

func TestBuildResumePrompt_WithJobContext(t *testing.T) {
	job := &domain.JobContext{
		Title:       "Senior Backend Engineer",
		Location:    "Berlin, Germany",
		Description: "Build resilient document pipelines in Go.",
	}

	prompt := extractor.BuildResumePrompt(job)

	// Job context is interpolated verbatim
	assert.Contains(t, prompt, "Senior Backend Engineer")
	assert.Contains(t, prompt, "Berlin, Germany")
	assert.Contains(t, prompt, "Build resilient document pipelines in Go.")

	for _, key := range []string{
		`"name"`, `"website"`, `"linkedin"`, `"email"`,
		`"years_of_experience"`, `"skills"`, `"relevant_skills"`, `"match_score"`,
	} {
		assert.Contains(t, prompt, key)
	}

	// The numeric bound lives in the instruction, not in runtime clamping.
	assert.Contains(t, prompt, "between 0 and 100")
	assert.Contains(t, prompt, "integer")
	assert.Contains(t, prompt, "ordered most relevant first")
	assert.Contains(t, prompt, "use null for that field")
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := extractor.BuildImagePrompt()

	for _, key := range []string{`"name"`, `"website"`, `"email"`} {
		assert.Contains(t, prompt, key)
	}
	// The vision path has a narrower contract.
	assert.NotContains(t, prompt, "linkedin")
	assert.NotContains(t, prompt, "match_score")
	assert.Contains(t, prompt, "use null for that field")
}
