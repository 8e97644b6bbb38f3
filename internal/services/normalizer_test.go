package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	clean := `{"requiredSkills":["Go"],"missingSkills":["Go"],"skillMatchPercentage":0}`

	t.Run("strips fenced json", func(t *testing.T) {
		fenced := "```json\n" + clean + "\n```"
		assert.Equal(t, clean, ExtractJSON(fenced))
	})

	t.Run("strips untagged fences", func(t *testing.T) {
		fenced := "```\n" + clean + "\n```"
		assert.Equal(t, clean, ExtractJSON(fenced))
	})

	t.Run("clean input is unchanged", func(t *testing.T) {
		assert.Equal(t, clean, ExtractJSON(clean))
	})

	t.Run("idempotent", func(t *testing.T) {
		fenced := "```json\n" + clean + "\n```"
		once := ExtractJSON(fenced)
		assert.Equal(t, once, ExtractJSON(once))
	})

	t.Run("slices surrounding prose", func(t *testing.T) {
		wrapped := "Here is the result:\n" + clean + "\nHope that helps!"
		assert.Equal(t, clean, ExtractJSON(wrapped))
	})
}

func TestDecodeSkillGap(t *testing.T) {
	t.Run("fenced response matches unfenced", func(t *testing.T) {
		raw := `{"requiredSkills":["Go"],"missingSkills":["Go"],"skillMatchPercentage":0}`
		fenced := "```json\n" + raw + "\n```"

		assert.Equal(t, DecodeSkillGap(raw), DecodeSkillGap(fenced))

		result := DecodeSkillGap(fenced)
		assert.Equal(t, []string{"Go"}, result.RequiredSkills)
		assert.Equal(t, []string{"Go"}, result.MissingSkills)
		assert.Equal(t, float64(0), result.SkillMatchPercentage)
	})

	t.Run("prose degrades to default", func(t *testing.T) {
		result := DecodeSkillGap("I'm sorry, I cannot analyze this job description.")
		assert.Equal(t, DefaultSkillGapResult(), result)
		assert.NotNil(t, result.RequiredSkills)
		assert.NotNil(t, result.MissingSkills)
	})

	t.Run("missing arrays become empty", func(t *testing.T) {
		result := DecodeSkillGap(`{"skillMatchPercentage":50}`)
		assert.Equal(t, []string{}, result.RequiredSkills)
		assert.Equal(t, []string{}, result.MissingSkills)
		assert.Equal(t, float64(50), result.SkillMatchPercentage)
	})

	t.Run("percentage as string", func(t *testing.T) {
		result := DecodeSkillGap(`{"requiredSkills":["Go"],"missingSkills":[],"skillMatchPercentage":"67%"}`)
		assert.Equal(t, float64(67), result.SkillMatchPercentage)
	})

	t.Run("non-numeric percentage defaults to zero", func(t *testing.T) {
		result := DecodeSkillGap(`{"requiredSkills":["Go"],"missingSkills":[],"skillMatchPercentage":"high"}`)
		assert.Equal(t, float64(0), result.SkillMatchPercentage)
	})

	t.Run("percentage clamped into range", func(t *testing.T) {
		assert.Equal(t, float64(100),
			DecodeSkillGap(`{"skillMatchPercentage":150}`).SkillMatchPercentage)
		assert.Equal(t, float64(0),
			DecodeSkillGap(`{"skillMatchPercentage":-20}`).SkillMatchPercentage)
	})

	t.Run("absent percentage defaults to zero", func(t *testing.T) {
		result := DecodeSkillGap(`{"requiredSkills":["Go"],"missingSkills":["Go"]}`)
		assert.Equal(t, float64(0), result.SkillMatchPercentage)
	})
}

func TestDecodeCvContent(t *testing.T) {
	valid := `{
		"summary": "Results-driven engineer.",
		"skills": [{"category": "Backend", "items": "Go, PostgreSQL"}],
		"experience": [{"title": "Engineer", "company": "Acme", "date": "2020-2024", "points": ["Shipped things"]}]
	}`

	t.Run("valid document", func(t *testing.T) {
		content, err := DecodeCvContent(valid)
		require.NoError(t, err)
		assert.Equal(t, "Results-driven engineer.", content.Summary)
		require.Len(t, content.Skills, 1)
		assert.Equal(t, "Go, PostgreSQL", content.Skills[0].Items)
		require.Len(t, content.Experience, 1)
		assert.Equal(t, []string{"Shipped things"}, content.Experience[0].Points)
	})

	t.Run("fenced document parses identically", func(t *testing.T) {
		fenced := "```json\n" + valid + "\n```"
		plain, err := DecodeCvContent(valid)
		require.NoError(t, err)
		wrapped, err := DecodeCvContent(fenced)
		require.NoError(t, err)
		assert.Equal(t, plain, wrapped)
	})

	t.Run("items emitted as a list are joined", func(t *testing.T) {
		raw := `{
			"summary": "s",
			"skills": [{"category": "Backend", "items": ["Go", "PostgreSQL"]}],
			"experience": [{"title": "t", "company": "c", "date": "d", "points": ["p"]}]
		}`
		content, err := DecodeCvContent(raw)
		require.NoError(t, err)
		assert.Equal(t, "Go, PostgreSQL", content.Skills[0].Items)
	})

	t.Run("prose is a hard error", func(t *testing.T) {
		_, err := DecodeCvContent("Sure! Here is a great CV for you.")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("missing summary is a schema error", func(t *testing.T) {
		raw := `{
			"skills": [{"category": "Backend", "items": "Go"}],
			"experience": [{"title": "t", "company": "c", "date": "d", "points": ["p"]}]
		}`
		_, err := DecodeCvContent(raw)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("missing skills is a schema error", func(t *testing.T) {
		raw := `{
			"summary": "s",
			"experience": [{"title": "t", "company": "c", "date": "d", "points": ["p"]}]
		}`
		_, err := DecodeCvContent(raw)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("missing experience is a schema error", func(t *testing.T) {
		raw := `{
			"summary": "s",
			"skills": [{"category": "Backend", "items": "Go"}]
		}`
		_, err := DecodeCvContent(raw)
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("nil points normalized to empty", func(t *testing.T) {
		raw := `{
			"summary": "s",
			"skills": [{"category": "Backend", "items": "Go"}],
			"experience": [{"title": "t", "company": "c", "date": "d"}]
		}`
		content, err := DecodeCvContent(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{}, content.Experience[0].Points)
	})
}
