package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
	"github.com/kyawphyoaung/ai-career-copilot/internal/repositories"
)

const (
	analysisTemperature   = 0.2
	generationTemperature = 0.7
)

type GeneratorService interface {
	// AnalyzeSkillGap never returns an error; on any backend or parse
	// failure it degrades to the zeroed default result.
	AnalyzeSkillGap(ctx context.Context, masterSkills map[string]float64, jobDescription string) models.SkillGapResult

	// GenerateTailoredCV fails on any backend or parse error; the CV is the
	// primary deliverable and has no fallback.
	GenerateTailoredCV(ctx context.Context, masterSkills map[string]float64, workHistory, jobDescription string) (*models.CvContent, error)

	// Generate runs the whole pipeline for one job description and persists
	// the resulting application.
	Generate(ctx context.Context, profileID uuid.UUID, req *models.GenerateRequest) (*models.Application, error)
}

type generatorService struct {
	profileRepo   repositories.ProfileRepository
	appRepo       repositories.ApplicationRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
	followUpAfter time.Duration
	now           func() time.Time
}

func NewGeneratorService(
	profileRepo repositories.ProfileRepository,
	appRepo repositories.ApplicationRepository,
	gemini GeminiService,
	followUpAfter time.Duration,
) GeneratorService {
	return &generatorService{
		profileRepo:   profileRepo,
		appRepo:       appRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		followUpAfter: followUpAfter,
		now:           time.Now,
	}
}

// AnalyzeSkillGap implements GeneratorService.
func (s *generatorService) AnalyzeSkillGap(ctx context.Context, masterSkills map[string]float64, jobDescription string) models.SkillGapResult {
	prompt := s.promptBuilder.BuildSkillGapPrompt(masterSkills, jobDescription)

	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, analysisTemperature)
	if err != nil {
		log.Printf("⚠️ Skill-gap analysis failed, using default result: %v", err)
		return DefaultSkillGapResult()
	}

	result := DecodeSkillGap(response)
	if len(result.RequiredSkills) == 0 && result.SkillMatchPercentage == 0 {
		log.Printf("⚠️ Skill-gap response yielded no skills. Raw response: %s", truncateForLog(response, 500))
	}
	return result
}

// GenerateTailoredCV implements GeneratorService.
func (s *generatorService) GenerateTailoredCV(ctx context.Context, masterSkills map[string]float64, workHistory, jobDescription string) (*models.CvContent, error) {
	prompt := s.promptBuilder.BuildCvContentPrompt(masterSkills, jobDescription, workHistory)

	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, generationTemperature)
	if err != nil {
		return nil, fmt.Errorf("cv generation: %w", err)
	}

	content, err := DecodeCvContent(response)
	if err != nil {
		log.Printf("❌ CV content did not match schema. Raw response: %s", truncateForLog(response, 500))
		return nil, err
	}

	return content, nil
}

// Generate implements GeneratorService. The two model calls have no data
// dependency on each other, so they run concurrently and join before
// aggregation. A CV failure aborts the request; an analysis failure does not
// (it has already degraded to the default inside AnalyzeSkillGap).
func (s *generatorService) Generate(ctx context.Context, profileID uuid.UUID, req *models.GenerateRequest) (*models.Application, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, fmt.Errorf("job description is required")
	}

	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	masterSkills, err := repositories.DecodeMasterSkills(profile.MasterSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to decode master skills: %w", err)
	}

	log.Printf("🤖 Generating application for %q at %q", req.JobTitle, req.CompanyName)

	var (
		wg      sync.WaitGroup
		gap     models.SkillGapResult
		content *models.CvContent
		cvErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		gap = s.AnalyzeSkillGap(ctx, masterSkills, req.JobDescription)
	}()
	go func() {
		defer wg.Done()
		content, cvErr = s.GenerateTailoredCV(ctx, masterSkills, profile.WorkHistory, req.JobDescription)
	}()
	wg.Wait()

	if cvErr != nil {
		return nil, cvErr
	}

	now := s.now()
	app := &models.Application{
		ID:                   uuid.New(),
		UserProfileID:        profile.ID,
		CompanyName:          req.CompanyName,
		JobTitle:             req.JobTitle,
		JobDescription:       req.JobDescription,
		Country:              req.Country,
		Source:               req.Source,
		ContactEmail:         req.ContactEmail,
		GeneratedCv:          datatypes.NewJSONType(*content),
		CvTheme:              req.CvTheme,
		CvPdfFilename:        deriveCvFilename(profile.Name, req.JobTitle, now),
		Status:               models.StatusApplied,
		FollowUp:             req.FollowUp,
		FollowUpCompleted:    false,
		AppliedAt:            now,
		RequiredSkills:       pq.StringArray(gap.RequiredSkills),
		MissingSkills:        pq.StringArray(gap.MissingSkills),
		SkillMatchPercentage: gap.SkillMatchPercentage,
	}

	if req.FollowUp {
		due := now.Add(s.followUpAfter)
		app.FollowUpDate = &due
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Printf("✅ Application %s saved (match %.0f%%)", app.ID, app.SkillMatchPercentage)
	return app, nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// deriveCvFilename builds the PDF filename the rendering layer will export
// to. Timestamp-based, which is enough to avoid collisions for one user.
func deriveCvFilename(userName, jobTitle string, at time.Time) string {
	name := strings.ReplaceAll(userName, " ", "")
	title := nonAlphanumeric.ReplaceAllString(jobTitle, "")
	return fmt.Sprintf("%s_%s_%s.pdf", name, title, at.Format("20060102150405"))
}
