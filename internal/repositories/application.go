package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	FindAllByProfile(profileID uuid.UUID) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateFollowUpCompleted(id uuid.UUID, completed bool) error
	CountByStatus(profileID uuid.UUID) (map[models.ApplicationStatus]int, error)
	CountPendingFollowUps(profileID uuid.UUID, dueBy time.Time) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindAllByProfile(profileID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("user_profile_id = ?", profileID).
		Order("applied_at DESC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

func (r *applicationRepository) UpdateFollowUpCompleted(id uuid.UUID, completed bool) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"follow_up_completed": completed,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update follow-up: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

func (r *applicationRepository) CountByStatus(profileID uuid.UUID) (map[models.ApplicationStatus]int, error) {
	type statusCount struct {
		Status models.ApplicationStatus
		Count  int
	}

	var rows []statusCount
	err := r.db.Model(&models.Application{}).
		Select("status, count(*) as count").
		Where("user_profile_id = ?", profileID).
		Group("status").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}

	counts := map[models.ApplicationStatus]int{
		models.StatusApplied:      0,
		models.StatusInterviewing: 0,
		models.StatusOffer:        0,
		models.StatusRejected:     0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountPendingFollowUps counts applications whose follow-up is flagged, not
// yet done, and due on or before dueBy.
func (r *applicationRepository) CountPendingFollowUps(profileID uuid.UUID, dueBy time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_profile_id = ?", profileID).
		Where("follow_up = ?", true).
		Where("follow_up_completed = ?", false).
		Where("follow_up_date <= ?", dueBy).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count pending follow-ups: %w", err)
	}
	return count, nil
}
