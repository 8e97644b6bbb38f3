package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSkillGapPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	skills := map[string]float64{"React": 5, "Node.js": 3}
	jd := "We need a React engineer with AWS experience."

	prompt := pb.BuildSkillGapPrompt(skills, jd)

	assert.Contains(t, prompt, jd)
	assert.Contains(t, prompt, "React (5 years)")
	assert.Contains(t, prompt, "Node.js (3 years)")

	// Output contract: exactly these three keys, nothing else
	assert.Contains(t, prompt, `"requiredSkills"`)
	assert.Contains(t, prompt, `"missingSkills"`)
	assert.Contains(t, prompt, `"skillMatchPercentage"`)
	assert.Contains(t, prompt, "(number of matching skills / number of required skills) * 100")
	assert.Contains(t, prompt, "ONLY a JSON object")
}

func TestBuildCvContentPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	skills := map[string]float64{"Go": 4}
	jd := "Backend role"

	t.Run("declares mandatory schema", func(t *testing.T) {
		prompt := pb.BuildCvContentPrompt(skills, jd, "Engineer at Acme 2020-2024")

		assert.Contains(t, prompt, jd)
		assert.Contains(t, prompt, "Engineer at Acme 2020-2024")
		assert.Contains(t, prompt, `"summary"`)
		assert.Contains(t, prompt, `"skills"`)
		assert.Contains(t, prompt, `"experience"`)
		// Each section must be spelled out as mandatory
		assert.Equal(t, 3, strings.Count(prompt, "This section is mandatory."))
		assert.Contains(t, prompt, "ONLY a valid JSON object")
	})

	t.Run("empty work history gets a placeholder", func(t *testing.T) {
		prompt := pb.BuildCvContentPrompt(skills, jd, "  ")
		assert.Contains(t, prompt, "No work history on record.")
	})
}

func TestFormatMasterSkills(t *testing.T) {
	t.Run("sorted and annotated", func(t *testing.T) {
		out := FormatMasterSkills(map[string]float64{"React": 5, "AWS": 2})
		assert.Equal(t, "AWS (2 years), React (5 years)", out)
	})

	t.Run("zero years renders name only", func(t *testing.T) {
		out := FormatMasterSkills(map[string]float64{"Go": 0})
		assert.Equal(t, "Go", out)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, "No skills listed.", FormatMasterSkills(nil))
	})
}
