package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kyawphyoaung/ai-career-copilot/internal/models"
)

type ProfileRepository interface {
	Upsert(profile *models.UserProfile) error
	FindByID(id uuid.UUID) (*models.UserProfile, error)
	FindFirst() (*models.UserProfile, error)
	UpdateWorkHistory(id uuid.UUID, workHistory string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert replaces the whole profile document. The profile form always posts
// every field, so a full-row update is the intended semantics.
func (r *profileRepository) Upsert(profile *models.UserProfile) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *profileRepository) FindByID(id uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// FindFirst returns the only profile of this single-tenant install. Callers
// thread the returned ID through the pipeline instead of assuming one.
func (r *profileRepository) FindFirst() (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Order("created_at ASC").First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) UpdateWorkHistory(id uuid.UUID, workHistory string) error {
	result := r.db.Model(&models.UserProfile{}).
		Where("id = ?", id).
		Update("work_history", workHistory)

	if result.Error != nil {
		return fmt.Errorf("failed to update work history: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}

// DecodeMasterSkills normalizes the stored master-skill column into a
// skill -> years mapping. Two historical shapes exist: an object keyed by
// skill name and a flat array of names (years unknown, recorded as 0).
func DecodeMasterSkills(raw datatypes.JSON) (map[string]float64, error) {
	if len(raw) == 0 {
		return map[string]float64{}, nil
	}

	var asMap map[string]float64
	if err := json.Unmarshal(raw, &asMap); err == nil {
		if asMap == nil {
			asMap = map[string]float64{}
		}
		return asMap, nil
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		skills := make(map[string]float64, len(asList))
		for _, name := range asList {
			skills[name] = 0
		}
		return skills, nil
	}

	return nil, fmt.Errorf("master skills column is neither a map nor a list")
}

// EncodeMasterSkills serializes the canonical mapping shape for storage.
func EncodeMasterSkills(skills map[string]float64) (datatypes.JSON, error) {
	if skills == nil {
		skills = map[string]float64{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode master skills: %w", err)
	}
	return datatypes.JSON(raw), nil
}
