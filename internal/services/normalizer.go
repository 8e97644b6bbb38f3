package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
)

// DefaultSkillGapResult is what the analysis path degrades to when the model
// response is unusable. Arrays are empty, never nil, so persistence and the
// JSON API never see a missing-vs-null ambiguity.
func DefaultSkillGapResult() models.SkillGapResult {
	return models.SkillGapResult{
		RequiredSkills:       []string{},
		MissingSkills:        []string{},
		SkillMatchPercentage: 0,
	}
}

// ExtractJSON strips markdown code fences the model frequently wraps its
// output in despite instructions, then slices to the outermost JSON object
// or array. Running it on already-clean JSON is a no-op.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	endObj := strings.LastIndex(text, "}")
	startArr := strings.Index(text, "[")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj > startObj && (startArr == -1 || startObj < startArr) {
		return text[startObj : endObj+1]
	}
	if startArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}

// DecodeSkillGap converts a raw completion into a SkillGapResult. It never
// fails: any parse or shape problem yields the zeroed default, because
// skill-gap analysis is an enrichment, not the deliverable.
func DecodeSkillGap(raw string) models.SkillGapResult {
	var payload struct {
		RequiredSkills       []string    `json:"requiredSkills"`
		MissingSkills        []string    `json:"missingSkills"`
		SkillMatchPercentage interface{} `json:"skillMatchPercentage"`
	}

	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &payload); err != nil {
		return DefaultSkillGapResult()
	}

	result := models.SkillGapResult{
		RequiredSkills:       payload.RequiredSkills,
		MissingSkills:        payload.MissingSkills,
		SkillMatchPercentage: coercePercentage(payload.SkillMatchPercentage),
	}
	if result.RequiredSkills == nil {
		result.RequiredSkills = []string{}
	}
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}
	return result
}

// coercePercentage turns whatever the model put under skillMatchPercentage
// into a number in [0,100]. Non-numeric or absent values become 0.
func coercePercentage(v interface{}) float64 {
	var pct float64
	switch value := v.(type) {
	case float64:
		pct = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "%"), 64)
		if err != nil {
			return 0
		}
		pct = parsed
	default:
		return 0
	}

	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DecodeCvContent converts a raw completion into CvContent. Unlike the
// skill-gap path this is a hard failure: the CV is the deliverable and there
// is nothing sensible to fall back to.
func DecodeCvContent(raw string) (*models.CvContent, error) {
	var payload struct {
		Summary string `json:"summary"`
		Skills  []struct {
			Category string      `json:"category"`
			Items    interface{} `json:"items"`
		} `json:"skills"`
		Experience []models.ExperienceEntry `json:"experience"`
	}

	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	content := &models.CvContent{
		Summary:    strings.TrimSpace(payload.Summary),
		Skills:     make([]models.SkillCategory, 0, len(payload.Skills)),
		Experience: payload.Experience,
	}

	for _, s := range payload.Skills {
		content.Skills = append(content.Skills, models.SkillCategory{
			Category: s.Category,
			Items:    coerceItems(s.Items),
		})
	}

	if err := validateCvContent(content); err != nil {
		return nil, err
	}

	for i := range content.Experience {
		if content.Experience[i].Points == nil {
			content.Experience[i].Points = []string{}
		}
	}

	return content, nil
}

// coerceItems accepts the category items as either the comma-separated
// string the prompt asks for or the list some model versions emit anyway.
func coerceItems(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// validateCvContent enforces the prompt's own rules: every top-level section
// is mandatory.
func validateCvContent(content *models.CvContent) error {
	if content.Summary == "" {
		return fmt.Errorf("%w: missing summary", ErrMalformedResponse)
	}
	if len(content.Skills) == 0 {
		return fmt.Errorf("%w: missing skills", ErrMalformedResponse)
	}
	if len(content.Experience) == 0 {
		return fmt.Errorf("%w: missing experience", ErrMalformedResponse)
	}
	return nil
}

// truncateForLog caps raw model output before it is written to the log.
func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
