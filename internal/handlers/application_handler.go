package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
	"github.com/kyawphyoaung/ai-career-copilot/internal/repositories"
)

type ApplicationHandler struct {
	appRepo     repositories.ApplicationRepository
	profileRepo repositories.ProfileRepository
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:     appRepo,
		profileRepo: profileRepo,
	}
}

// HandleList handles GET /applications, newest first.
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	profile, err := h.profileRepo.FindFirst()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User profile not found",
		})
	}

	apps, err := h.appRepo.FindAllByProfile(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applications",
		})
	}

	return c.JSON(apps)
}

// HandleGet handles GET /applications/:id.
func (h *ApplicationHandler) HandleGet(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	return c.JSON(app)
}

// HandleUpdateStatus handles PATCH /applications/:id/status.
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status must be one of APPLIED, INTERVIEWING, OFFER, REJECTED",
		})
	}

	if err := h.appRepo.UpdateStatus(appID, status); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	app, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch updated application",
		})
	}

	return c.JSON(app)
}

// HandleUpdateFollowUp handles PATCH /applications/:id/follow-up.
func (h *ApplicationHandler) HandleUpdateFollowUp(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	req := models.FollowUpUpdateRequest{Completed: true}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	if err := h.appRepo.UpdateFollowUpCompleted(appID, req.Completed); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	app, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch updated application",
		})
	}

	return c.JSON(app)
}
