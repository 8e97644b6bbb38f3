package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
	"github.com/kyawphyoaung/ai-career-copilot/internal/repositories"
)

type DashboardHandler struct {
	appRepo     repositories.ApplicationRepository
	profileRepo repositories.ProfileRepository
}

func NewDashboardHandler(
	appRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
) *DashboardHandler {
	return &DashboardHandler{
		appRepo:     appRepo,
		profileRepo: profileRepo,
	}
}

// HandleDashboard handles GET /dashboard.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	profile, err := h.profileRepo.FindFirst()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User profile not found",
		})
	}

	counts, err := h.appRepo.CountByStatus(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch dashboard data",
		})
	}

	total := 0
	statusCounts := make(map[string]int, len(counts))
	for status, count := range counts {
		statusCounts[string(status)] = count
		total += count
	}

	return c.JSON(models.DashboardResponse{
		TotalApplications: total,
		StatusCounts:      statusCounts,
	})
}

// HandlePendingFollowUps handles GET /follow-ups/pending. A follow-up is
// pending when it is flagged, not completed, and due now or in the past.
func (h *DashboardHandler) HandlePendingFollowUps(c *fiber.Ctx) error {
	profile, err := h.profileRepo.FindFirst()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User profile not found",
		})
	}

	count, err := h.appRepo.CountPendingFollowUps(profile.ID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch pending follow-up count",
		})
	}

	return c.JSON(models.PendingFollowUpsResponse{Count: count})
}
