package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
	"github.com/kyawphyoaung/ai-career-copilot/internal/repositories"
	"github.com/kyawphyoaung/ai-career-copilot/internal/services"
)

type GenerateHandler struct {
	profileRepo repositories.ProfileRepository
	generator   services.GeneratorService
}

func NewGenerateHandler(
	profileRepo repositories.ProfileRepository,
	generator services.GeneratorService,
) *GenerateHandler {
	return &GenerateHandler{
		profileRepo: profileRepo,
		generator:   generator,
	}
}

// HandleGenerate handles POST /generate. It runs the full tailoring pipeline
// and persists the resulting application.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobDescription is required",
		})
	}

	if req.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "companyName is required",
		})
	}

	if req.JobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobTitle is required",
		})
	}

	// The core takes an explicit profile ID; the HTTP layer of this
	// single-tenant install resolves it to the only profile there is.
	profile, err := h.profileRepo.FindFirst()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User profile not found. Please create it first.",
		})
	}

	app, err := h.generator.Generate(c.UserContext(), profile.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMalformedResponse):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": services.ErrMalformedResponse.Error(),
			})
		case errors.Is(err, services.ErrGenerationFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to generate content from AI. Please try again.",
			})
		case errors.Is(err, services.ErrPersistence):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "CV was generated but the application could not be saved",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}
