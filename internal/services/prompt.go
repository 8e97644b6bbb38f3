package services

import (
	"fmt"
	"sort"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSkillGapPrompt creates the prompt for skill-gap analysis. The model
// must answer with a JSON object carrying exactly requiredSkills,
// missingSkills and skillMatchPercentage; everything downstream depends on
// those three keys.
func (pb *PromptBuilder) BuildSkillGapPrompt(masterSkills map[string]float64, jobDescription string) string {
	return fmt.Sprintf(`You are an expert technical recruiter analyzing how well a candidate's skills match a job posting.

JOB DESCRIPTION:
%s

CANDIDATE'S MASTER SKILL SET:
%s

Your task:
1. Extract the required skills from the job description (technical skills, tools, platforms).
2. Compare them against the candidate's master skill set. A skill matches when it appears in the master skill set, ignoring case and minor naming differences (e.g. "Node.js" matches "NodeJS").
3. List every required skill that is NOT in the master skill set as a missing skill.
4. Compute the skill match percentage as: (number of matching skills / number of required skills) * 100, rounded to the nearest integer. If there are no required skills, the percentage is 0.

Return ONLY a JSON object with exactly these three keys and no others:
{
  "requiredSkills": ["string"],
  "missingSkills": ["string"],
  "skillMatchPercentage": number
}

Do not include any explanatory text, markdown formatting, or anything outside of the JSON object.`,
		jobDescription, FormatMasterSkills(masterSkills))
}

// BuildCvContentPrompt creates the prompt for tailored CV generation.
// Every top-level field of the declared schema is spelled out as mandatory;
// the model skipping a section is the main failure mode of this pipeline.
func (pb *PromptBuilder) BuildCvContentPrompt(masterSkills map[string]float64, jobDescription, workHistory string) string {
	if strings.TrimSpace(workHistory) == "" {
		workHistory = "No work history on record."
	}

	return fmt.Sprintf(`**Role:** You are an expert career coach and professional CV writer. Your task is to generate tailored CV content for a user applying for a specific job.

**Objective:** Create a complete CV JSON object with "summary", "skills", and "experience" sections that are highly relevant to the provided Job Description, based on the user's Master Skill Set and work history.

**Input Data:**

1. Job Description (JD):
%s

2. Master Skill Set & Experience: %s

3. Past Work History (for context):
%s

**Instructions & Rules:**

1. Analyze the JD: identify the top 5-7 most critical technical skills and soft skills required for the job.
2. Generate "summary": write a powerful, concise professional summary (3-4 sentences) that directly addresses the JD's core requirements and incorporates its most important keywords. This section is mandatory.
3. Generate "skills": create 3-4 skill categories (e.g., "Frontend & Web Technologies", "Backend & Databases"). From the Master Skill Set, select ONLY the skills most relevant to the JD. The "items" value of each category must be a single comma-separated string (e.g., "React, Node.js, TypeScript"). This section is mandatory.
4. Generate "experience": for each past role in the work history, write 2-3 achievement-oriented bullet points. Each bullet point must map to a responsibility or requirement in the JD and use metrics where possible (e.g., "improved performance by 15%%"). This section is mandatory.
5. Output format: you MUST return ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or anything outside of the JSON structure:
{
  "summary": "string",
  "skills": [
    { "category": "string", "items": "string" }
  ],
  "experience": [
    { "title": "string", "company": "string", "date": "string", "points": ["string", "string"] }
  ]
}

Now, generate the complete JSON content based on the provided data.`,
		jobDescription, FormatMasterSkills(masterSkills), workHistory)
}

// FormatMasterSkills renders the skill mapping as a stable, human-readable
// list. Sorted so the same profile always produces the same prompt.
func FormatMasterSkills(masterSkills map[string]float64) string {
	if len(masterSkills) == 0 {
		return "No skills listed."
	}

	names := make([]string, 0, len(masterSkills))
	for name := range masterSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		years := masterSkills[name]
		if years > 0 {
			parts = append(parts, fmt.Sprintf("%s (%g years)", name, years))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
