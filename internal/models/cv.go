package models

// CvContent is the AI-generated part of a CV. Its shape mirrors the JSON
// schema the generation prompt declares; the normalizer enforces it before a
// value of this type is ever produced.
type CvContent struct {
	Summary    string            `json:"summary"`
	Skills     []SkillCategory   `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
}

// SkillCategory groups related skills under one label. Items is a single
// comma-separated string, which is how the CV renderer expects it.
type SkillCategory struct {
	Category string `json:"category"`
	Items    string `json:"items"`
}

type ExperienceEntry struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Date    string   `json:"date"`
	Points  []string `json:"points"`
}

// SkillGapResult is the outcome of comparing a job description's required
// skills against the user's master skill set. SkillMatchPercentage is always
// in [0,100], even when the model response was unusable.
type SkillGapResult struct {
	RequiredSkills       []string `json:"requiredSkills"`
	MissingSkills        []string `json:"missingSkills"`
	SkillMatchPercentage float64  `json:"skillMatchPercentage"`
}
