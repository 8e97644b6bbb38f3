package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
	"github.com/kyawphyoaung/ai-career-copilot/internal/repositories"
	"github.com/kyawphyoaung/ai-career-copilot/internal/services"
)

type ProfileHandler struct {
	profileRepo  repositories.ProfileRepository
	storage      services.StorageService
	resumeParser services.ResumeParserService
	maxFileSize  int64
}

func NewProfileHandler(
	profileRepo repositories.ProfileRepository,
	storage services.StorageService,
	resumeParser services.ResumeParserService,
	maxFileSize int64,
) *ProfileHandler {
	return &ProfileHandler{
		profileRepo:  profileRepo,
		storage:      storage,
		resumeParser: resumeParser,
		maxFileSize:  maxFileSize,
	}
}

// HandleGet handles GET /profile.
func (h *ProfileHandler) HandleGet(c *fiber.Ctx) error {
	profile, err := h.profileRepo.FindFirst()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	return c.JSON(profile)
}

// HandleUpsert handles PUT /profile. The profile form posts the whole
// document every time, so the write is a full replacement.
func (h *ProfileHandler) HandleUpsert(c *fiber.Ctx) error {
	var req models.ProfileRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	masterSkills, err := repositories.EncodeMasterSkills(req.MasterSkills)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid master skills",
		})
	}

	profile := &models.UserProfile{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		Education:    datatypes.NewJSONType(req.Education),
		Leadership:   datatypes.NewJSONType(req.Leadership),
		MasterSkills: masterSkills,
		WorkHistory:  req.WorkHistory,
	}

	// Keep the existing ID so the upsert replaces rather than duplicates.
	if existing, err := h.profileRepo.FindFirst(); err == nil {
		profile.ID = existing.ID
		if req.WorkHistory == "" {
			profile.WorkHistory = existing.WorkHistory
		}
	} else {
		profile.ID = uuid.New()
	}

	if err := h.profileRepo.Upsert(profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.JSON(profile)
}

// HandleImportResume handles POST /profile/resume. The uploaded PDF's text
// becomes the profile's work-history context for CV generation.
func (h *ProfileHandler) HandleImportResume(c *fiber.Ctx) error {
	profile, err := h.profileRepo.FindFirst()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found. Please create it first.",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storage.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	content, err := h.resumeParser.ExtractText(filePath)
	if err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from resume: %v", err),
		})
	}

	if err := h.profileRepo.UpdateWorkHistory(profile.ID, content.Text); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile work history",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.ResumeImportResponse{
		Filename:  filename,
		PageCount: content.PageCount,
		Chars:     len(content.Text),
	})
}
